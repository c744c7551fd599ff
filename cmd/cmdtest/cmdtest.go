// Package cmdtest helps testing cobra commands.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// Run executes cmd with args and returns everything written to its output.
// The test fails if the command returns an error.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	out, err := Exec(cmd, args)
	require.NoError(t, err, "running %s %v", cmd.Name(), args)
	return out
}

// Exec executes cmd with args and returns its output and error.
func Exec(cmd *cobra.Command, args []string) ([]byte, error) {
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return b.Bytes(), err
}
