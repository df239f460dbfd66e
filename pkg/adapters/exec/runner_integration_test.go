//go:build integration
// +build integration

package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunner_Output(t *testing.T) {
	r := New()
	out, err := r.Output(context.Background(), Command{Name: "echo", Args: []string{"hello"}})
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
}

func TestRunner_Output_UnknownCommand(t *testing.T) {
	r := New()
	_, err := r.Output(context.Background(), Command{Name: "definitely-not-a-command"})
	require.Error(t, err)
}
