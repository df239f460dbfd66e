// Package docker builds the docker invocations behind the build, test
// and dependency-check workflows. Commands are explicit argv values so
// that a dry run can print exactly what would execute.
package docker

import (
	"fmt"
	"strings"

	"github.com/lerenn/buildwrap/pkg/adapters/exec"
	"github.com/lerenn/buildwrap/pkg/config"
)

// CheckDocker returns the command verifying that docker is available.
func CheckDocker() exec.Command {
	return exec.Command{Name: "docker", Args: []string{"--version"}}
}

// Build returns the image build pipeline: an optional pull of the
// current image (DCKR_PULL) followed by the build itself
// (DCKR_NOCACHE toggles --no-cache).
func Build(snap *config.Snapshot, settings *config.Settings) []exec.Command {
	var cmds []exec.Command

	if settings.DockerPull {
		cmds = append(cmds, exec.Command{
			Name: "docker",
			Args: []string{"pull", snap.DockerImage},
		})
	}

	args := []string{"build"}
	if settings.DockerNoCache {
		args = append(args, "--no-cache")
	}
	args = append(args, "-t", snap.DockerImage, ".")
	cmds = append(cmds, exec.Command{Name: "docker", Args: args})

	return cmds
}

// CheckDeps returns the containerized dependency check.
func CheckDeps(snap *config.Snapshot, settings *config.Settings) exec.Command {
	args := []string{"run", "--rm", ttyFlag(settings)}
	args = append(args, "-w", snap.DockerSourcePath)
	args = append(args, snap.DockerImage)
	args = append(args, strings.Fields(settings.DepsCommand)...)
	return exec.Command{Name: "docker", Args: args}
}

// Test returns the containerized test run. USE_VOL mounts the checkout
// over the image's source copy, USE_USR maps the invoking user into
// the container.
func Test(snap *config.Snapshot, settings *config.Settings) exec.Command {
	args := []string{"run", "--rm", ttyFlag(settings)}
	if settings.UseVolume {
		args = append(args, "-v", fmt.Sprintf("%s:%s", snap.CurrentDirectory, snap.DockerSourcePath))
	}
	if settings.UseUser {
		args = append(args, "--user", fmt.Sprintf("%d:%d", snap.UserID, snap.GroupID))
	}
	args = append(args, "-w", snap.DockerSourcePath)
	args = append(args, snap.DockerImage)
	args = append(args, strings.Fields(settings.TestCommand)...)
	return exec.Command{Name: "docker", Args: args}
}

// ttyFlag picks the interactive flag: NOTTY drops terminal allocation
// but keeps stdin open.
func ttyFlag(settings *config.Settings) string {
	if settings.NoTTY {
		return "-i"
	}
	return "-it"
}
