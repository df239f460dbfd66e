//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mock.gen.go -package=exec
package exec

import (
	"context"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
)

// Command is a single subprocess invocation as an explicit argv,
// never a shell string.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a dry run prints it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner defines the interface for running subprocesses.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, cmd Command) (string, error)
	// Run runs the command with its output attached to the process
	// standard streams.
	Run(ctx context.Context, cmd Command) error
}

// runner implements Runner using os/exec.
type runner struct{}

// Ensure runner implements Runner.
var _ Runner = (*runner)(nil)

// New returns a Runner backed by os/exec.
func New() Runner {
	return &runner{}
}

// Output runs the command and returns its standard output as a string.
func (r *runner) Output(ctx context.Context, cmd Command) (string, error) {
	out, err := osexec.CommandContext(ctx, cmd.Name, cmd.Args...).Output()
	if err != nil {
		return "", fmt.Errorf("running %q: %w", cmd.String(), err)
	}
	return string(out), nil
}

// Run runs the command, forwarding its output to the current process.
func (r *runner) Run(ctx context.Context, cmd Command) error {
	c := osexec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Stdin = os.Stdin
	if err := c.Run(); err != nil {
		return fmt.Errorf("running %q: %w", cmd.String(), err)
	}
	return nil
}
