//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mock.gen.go -package=git
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lerenn/buildwrap/pkg/adapters/exec"
)

// DefaultRemote is the remote the configuration is derived from.
const DefaultRemote = "origin"

// Missing-remote errors. The messages are part of the output contract:
// they are printed verbatim and downstream tooling distinguishes them
// from malformed-URL failures by the words "Missing" and "Error".
var (
	// ErrMissingRemoteURL is returned when the remote exists but has no URL.
	ErrMissingRemoteURL = errors.New("Missing `origin` remote URL: No URL set for remote 'origin'.")
	// ErrMissingRemote is returned when the remote is not configured at all.
	ErrMissingRemote = errors.New("Missing `origin` remote.")
	// ErrNoRepository is returned when remote details cannot be fetched,
	// typically because the working directory is not a git repository.
	ErrNoRepository = errors.New("Error: Unable to fetch remote details. " +
		"Ensure you are inside a valid Git repository.")
)

// Git reads information from the local git checkout.
type Git interface {
	// RemoteURL returns the URL configured for the origin remote.
	RemoteURL(ctx context.Context) (string, error)
	// Branch returns the name of the currently checked-out branch.
	Branch(ctx context.Context) (string, error)
}

// git implements Git by invoking the git binary through a Runner.
type git struct {
	runner exec.Runner
}

// Ensure git implements Git.
var _ Git = (*git)(nil)

// New returns a Git backed by the given runner.
func New(runner exec.Runner) Git {
	return &git{runner: runner}
}

// RemoteURL returns the origin remote URL, or one of the missing-remote
// errors when no usable URL is configured.
func (g *git) RemoteURL(ctx context.Context) (string, error) {
	out, err := g.runner.Output(ctx, exec.Command{
		Name: "git",
		Args: []string{"config", "--get", fmt.Sprintf("remote.%s.url", DefaultRemote)},
	})
	if err != nil {
		return "", g.describeMissingRemote(ctx)
	}

	url := strings.TrimSpace(out)
	if url == "" {
		return "", ErrMissingRemoteURL
	}
	return url, nil
}

// describeMissingRemote builds the diagnostic for a missing origin
// remote, listing the remotes that do exist when possible.
func (g *git) describeMissingRemote(ctx context.Context) error {
	remotes, err := g.runner.Output(ctx, exec.Command{
		Name: "git",
		Args: []string{"remote", "-v"},
	})
	if err != nil {
		return ErrNoRepository
	}
	return fmt.Errorf("%w Available remotes: %s", ErrMissingRemote, strings.TrimSpace(remotes))
}

// Branch returns the currently checked-out branch name.
func (g *git) Branch(ctx context.Context) (string, error) {
	out, err := g.runner.Output(ctx, exec.Command{
		Name: "git",
		Args: []string{"rev-parse", "--abbrev-ref", "HEAD"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(out), nil
}
