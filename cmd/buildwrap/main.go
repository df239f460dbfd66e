package main

import (
	"context"
	"os"

	"github.com/lerenn/buildwrap/pkg/adapters/exec"
	"github.com/lerenn/buildwrap/pkg/adapters/git"
	"github.com/lerenn/buildwrap/pkg/adapters/github"
	"github.com/lerenn/buildwrap/pkg/config"
	"github.com/lerenn/buildwrap/pkg/logging"
	"github.com/lerenn/buildwrap/pkg/workflow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	dryRun     bool
)

func main() {
	logging.Init()

	rootCmd := &cobra.Command{
		Use:   "buildwrap",
		Short: "Buildwrap wraps the Docker-based build, test and dependency-check workflows",
		Long: "Buildwrap derives its configuration (GitHub user, repository name, branch,\n" +
			"image name) from the local Git checkout and drives docker accordingly.\n" +
			"Every subcommand accepts trailing KEY=VALUE overrides, e.g.:\n\n" +
			"  buildwrap github-user REMOTE_URL=https://github.com/Owner/repo",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false,
		"Print the commands that would run instead of executing them")

	for _, c := range []struct {
		use, short string
		run        func(*workflow.Workflow, context.Context) error
	}{
		{"github-user", "Print the GitHub account name derived from the remote URL",
			(*workflow.Workflow).GitHubUser},
		{"print-config", "Print the resolved build configuration",
			(*workflow.Workflow).PrintConfig},
		{"check-docker", "Verify that docker is installed",
			(*workflow.Workflow).CheckDocker},
		{"check-deps", "Run the dependency check inside the project image",
			(*workflow.Workflow).CheckDeps},
		{"build", "Build the project image",
			(*workflow.Workflow).Build},
		{"test", "Run the test suite inside the project image",
			(*workflow.Workflow).Test},
		{"check-remote", "Verify that the remote repository exists on GitHub",
			(*workflow.Workflow).CheckRemote},
	} {
		run := c.run
		rootCmd.AddCommand(&cobra.Command{
			Use:   c.use + " [KEY=VALUE ...]",
			Short: c.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := newWorkflow(args)
				if err != nil {
					return err
				}
				return run(w, cmd.Context())
			},
		})
	}

	if err := rootCmd.Execute(); err != nil {
		logging.L().Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}

// newWorkflow assembles a workflow from the settings and the real adapters.
func newWorkflow(overrides []string) (*workflow.Workflow, error) {
	settings, err := config.Load(configPath, overrides)
	if err != nil {
		return nil, err
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	runner := exec.New()
	return workflow.New(workflow.Params{
		Settings: settings,
		Git:      git.New(runner),
		Runner:   runner,
		Client:   github.New(os.Getenv("GITHUB_TOKEN")),
		Out:      os.Stdout,
		DryRun:   dryRun,
		Workdir:  dir,
	}), nil
}
