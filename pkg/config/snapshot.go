package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/lerenn/buildwrap/pkg/adapters/git"
	"github.com/lerenn/buildwrap/pkg/remote"
	"golang.org/x/mod/modfile"
)

const (
	// ImageRegistry is the container registry images are published to.
	ImageRegistry = "ghcr.io"
	// ContainerSourceRoot is where the repository is mounted inside containers.
	ContainerSourceRoot = "/usr/local/src"
)

// versionTagPattern recognizes image tag overrides that claim to be a
// version; those must parse as strict semver.
var versionTagPattern = regexp.MustCompile(`^v[0-9]`)

// Snapshot is an immutable view of the build configuration, resolved
// once per invocation from the working directory, the git checkout and
// the settings. All commands consume the snapshot instead of reading
// ambient process state ad hoc.
type Snapshot struct {
	CurrentDirectory string
	GitHubUser       string
	RepositoryName   string
	GitBranch        string
	DockerImage      string
	DockerSourcePath string
	UserID           int
	GroupID          int
}

// ResolveSnapshot resolves the build configuration for the repository
// checked out at dir.
func ResolveSnapshot(ctx context.Context, dir string, settings *Settings, g git.Git) (*Snapshot, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	repoName := filepath.Base(absDir)

	branch, err := g.Branch(ctx)
	if err != nil {
		return nil, err
	}

	remoteURL, err := EffectiveRemoteURL(ctx, absDir, settings, g)
	if err != nil {
		return nil, err
	}

	user, err := remote.Resolve(remoteURL)
	if err != nil {
		return nil, err
	}

	tag := settings.DockerTag
	if tag == "" {
		tag = branch
	} else if err := validateTag(tag); err != nil {
		return nil, err
	}

	return &Snapshot{
		CurrentDirectory: absDir,
		GitHubUser:       user,
		RepositoryName:   repoName,
		GitBranch:        branch,
		DockerImage:      fmt.Sprintf("%s/%s/%s:%s", ImageRegistry, user, repoName, tag),
		DockerSourcePath: path.Join(ContainerSourceRoot, repoName),
		UserID:           os.Getuid(),
		GroupID:          os.Getgid(),
	}, nil
}

// EffectiveRemoteURL returns the remote URL the configuration derives
// from: the REMOTE_URL override when set, otherwise the origin remote
// of the checkout, otherwise an URL derived from the go.mod module
// path when the checkout has no remote at all.
func EffectiveRemoteURL(ctx context.Context, dir string, settings *Settings, g git.Git) (string, error) {
	if settings.RemoteURL != "" {
		return settings.RemoteURL, nil
	}

	url, err := g.RemoteURL(ctx)
	if err == nil {
		return url, nil
	}
	if errors.Is(err, git.ErrMissingRemote) || errors.Is(err, git.ErrNoRepository) {
		if fromMod, ok := remoteURLFromModFile(dir); ok {
			return fromMod, nil
		}
	}
	return "", err
}

// remoteURLFromModFile derives an HTTPS remote URL from the module
// path of a go.mod in dir, when that path has the host/owner/repo shape.
func remoteURLFromModFile(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", false
	}
	mf, err := modfile.Parse("go.mod", content, nil)
	if err != nil || mf.Module == nil {
		return "", false
	}
	if strings.Count(mf.Module.Mod.Path, "/") != 2 {
		return "", false
	}
	return "https://" + mf.Module.Mod.Path, true
}

// validateTag rejects version-looking image tag overrides that are not
// valid semver. Branch-name tags pass through untouched.
func validateTag(tag string) error {
	if !versionTagPattern.MatchString(tag) {
		return nil
	}
	if _, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v")); err != nil {
		return fmt.Errorf("invalid image tag %q: %w", tag, err)
	}
	return nil
}

// Report renders the colon-delimited configuration report emitted by
// the print-config command.
func (s *Snapshot) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current Directory: %s\n", s.CurrentDirectory)
	fmt.Fprintf(&b, "GitHub User: %s\n", s.GitHubUser)
	fmt.Fprintf(&b, "Repository Name: %s\n", s.RepositoryName)
	fmt.Fprintf(&b, "Git Branch: %s\n", s.GitBranch)
	fmt.Fprintf(&b, "Docker Image: %s\n", s.DockerImage)
	fmt.Fprintf(&b, "Docker Source Path: %s\n", s.DockerSourcePath)
	return b.String()
}
