//go:build unit
// +build unit

package workflow

import (
	"bytes"
	"testing"

	"github.com/lerenn/buildwrap/pkg/adapters/exec"
	"github.com/lerenn/buildwrap/pkg/adapters/git"
	"github.com/lerenn/buildwrap/pkg/adapters/github"
	"github.com/lerenn/buildwrap/pkg/config"
	"go.uber.org/mock/gomock"
)

// TestWorkflow contains all the mocks and the workflow instance for testing.
type TestWorkflow struct {
	Workflow       *Workflow
	Out            *bytes.Buffer
	MockController *gomock.Controller
	MockGit        *git.MockGit
	MockRunner     *exec.MockRunner
	MockClient     *github.MockClient
}

// newTestWorkflow creates a TestWorkflow with all mocked dependencies.
func newTestWorkflow(t *testing.T, settings *config.Settings, dryRun bool) *TestWorkflow {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGit := git.NewMockGit(ctrl)
	mockRunner := exec.NewMockRunner(ctrl)
	mockClient := github.NewMockClient(ctrl)
	out := &bytes.Buffer{}

	w := New(Params{
		Settings: settings,
		Git:      mockGit,
		Runner:   mockRunner,
		Client:   mockClient,
		Out:      out,
		DryRun:   dryRun,
		Workdir:  t.TempDir(),
	})

	return &TestWorkflow{
		Workflow:       w,
		Out:            out,
		MockController: ctrl,
		MockGit:        mockGit,
		MockRunner:     mockRunner,
		MockClient:     mockClient,
	}
}

// defaultSettings mirrors the documented defaults of config.Load.
func defaultSettings() *config.Settings {
	return &config.Settings{
		UseVolume:   true,
		UseUser:     true,
		DockerPull:  true,
		TestCommand: "pytest",
		DepsCommand: "pip check",
	}
}
