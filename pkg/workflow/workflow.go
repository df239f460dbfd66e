// Package workflow wires the configuration snapshot, the git checkout
// and the docker command builders into the commands the CLI exposes.
package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/lerenn/buildwrap/pkg/adapters/exec"
	"github.com/lerenn/buildwrap/pkg/adapters/git"
	"github.com/lerenn/buildwrap/pkg/adapters/github"
	"github.com/lerenn/buildwrap/pkg/config"
	"github.com/lerenn/buildwrap/pkg/docker"
	"github.com/lerenn/buildwrap/pkg/logging"
	"github.com/lerenn/buildwrap/pkg/remote"
	"go.uber.org/zap"
)

// Workflow orchestrates the build, test and configuration commands.
type Workflow struct {
	settings *config.Settings
	git      git.Git
	runner   exec.Runner
	client   github.Client
	out      io.Writer
	dryRun   bool
	workdir  string

	snapshot *config.Snapshot // resolved at most once per invocation
}

// Params contains the dependencies of a Workflow.
type Params struct {
	Settings *config.Settings
	Git      git.Git
	Runner   exec.Runner
	Client   github.Client
	Out      io.Writer
	DryRun   bool
	Workdir  string
}

// New creates a new Workflow instance.
func New(params Params) *Workflow {
	return &Workflow{
		settings: params.Settings,
		git:      params.Git,
		runner:   params.Runner,
		client:   params.Client,
		out:      params.Out,
		dryRun:   params.DryRun,
		workdir:  params.Workdir,
	}
}

// GitHubUser resolves the effective remote URL and prints the bare
// lowercase account name. Syntactic failures and missing remotes are
// reported through the printed message, not the return value: message
// content is the failure signal at this entry point.
func (w *Workflow) GitHubUser(ctx context.Context) error {
	url, err := config.EffectiveRemoteURL(ctx, w.workdir, w.settings, w.git)
	if err != nil {
		logging.C(ctx).Warn("No usable remote URL", zap.Error(err))
		fmt.Fprintln(w.out, err.Error())
		return nil
	}

	user, err := remote.Resolve(url)
	if err != nil {
		logging.C(ctx).Warn("Remote URL rejected", zap.String("remote_url", url), zap.Error(err))
		fmt.Fprintln(w.out, err.Error())
		return nil
	}

	fmt.Fprintln(w.out, user)
	return nil
}

// PrintConfig emits the colon-delimited configuration report.
func (w *Workflow) PrintConfig(ctx context.Context) error {
	snap, err := w.resolveSnapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w.out, snap.Report())
	return nil
}

// CheckDocker verifies that docker is installed and reachable.
func (w *Workflow) CheckDocker(ctx context.Context) error {
	return w.execute(ctx, docker.CheckDocker())
}

// Build pulls and builds the project image.
func (w *Workflow) Build(ctx context.Context) error {
	snap, err := w.resolveSnapshot(ctx)
	if err != nil {
		return err
	}
	logging.C(ctx).Info("Building image",
		zap.String("image", snap.DockerImage),
		zap.Bool("pull", w.settings.DockerPull),
		zap.Bool("no_cache", w.settings.DockerNoCache))
	return w.execute(ctx, docker.Build(snap, w.settings)...)
}

// CheckDeps runs the dependency check inside the project image.
func (w *Workflow) CheckDeps(ctx context.Context) error {
	snap, err := w.resolveSnapshot(ctx)
	if err != nil {
		return err
	}
	return w.execute(ctx, docker.CheckDeps(snap, w.settings))
}

// Test runs the test suite inside the project image.
func (w *Workflow) Test(ctx context.Context) error {
	snap, err := w.resolveSnapshot(ctx)
	if err != nil {
		return err
	}
	logging.C(ctx).Info("Running tests in container",
		zap.String("image", snap.DockerImage),
		zap.Bool("volume", w.settings.UseVolume),
		zap.Bool("user", w.settings.UseUser))
	return w.execute(ctx, docker.Test(snap, w.settings))
}

// CheckRemote verifies through the GitHub API that the remote
// repository exists and reports its default branch. Unlike the
// resolver this is an explicit, network-using operation.
func (w *Workflow) CheckRemote(ctx context.Context) error {
	url, err := config.EffectiveRemoteURL(ctx, w.workdir, w.settings, w.git)
	if err != nil {
		return err
	}

	owner, repoName, err := remote.Parse(url)
	if err != nil {
		return err
	}

	repository, err := w.client.GetRepository(ctx, github.GetRepositoryParams{
		Owner: owner,
		Repo:  repoName,
	})
	if err != nil {
		return err
	}

	logging.C(ctx).Info("Remote repository found",
		zap.String("full_name", repository.FullName),
		zap.Bool("private", repository.Private))
	fmt.Fprintf(w.out, "Remote repository: %s (default branch: %s)\n",
		repository.FullName, repository.DefaultBranch)
	return nil
}

// resolveSnapshot resolves the configuration snapshot once and caches it.
func (w *Workflow) resolveSnapshot(ctx context.Context) (*config.Snapshot, error) {
	if w.snapshot != nil {
		return w.snapshot, nil
	}
	snap, err := config.ResolveSnapshot(ctx, w.workdir, w.settings, w.git)
	if err != nil {
		return nil, err
	}
	w.snapshot = snap
	return snap, nil
}

// execute runs the given commands through the runner, or prints them
// to stdout in dry-run mode.
func (w *Workflow) execute(ctx context.Context, cmds ...exec.Command) error {
	for _, cmd := range cmds {
		if w.dryRun {
			fmt.Fprintln(w.out, cmd.String())
			continue
		}
		logging.C(ctx).Info("Executing command", zap.String("command", cmd.String()))
		if err := w.runner.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}
