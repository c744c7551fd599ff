package arith

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/npillmayer/linalg/cmd/cmdtest"
	"github.com/npillmayer/linalg/vector"
)

func TestGolden(t *testing.T) {
	tests := []struct {
		name   string
		create func() *cobra.Command
		args   []string
	}{
		{"add", CreateAddCmd, []string{"1,2,3", "4,5,6"}},
		{"sub", CreateSubCmd, []string{"1,2,3", "4,5,6"}},
		{"dot", CreateDotCmd, []string{"3,4", "5,6"}},
		{"sum", CreateSumCmd, []string{"1,2", "3,4", "0.5,0.25"}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := goldie.New(t)
			got := cmdtest.Run(t, test.create(), test.args)
			g.Assert(t, test.name, got)
		})
	}
}

func TestShapeMismatch(t *testing.T) {
	for _, create := range []func() *cobra.Command{CreateAddCmd, CreateSubCmd, CreateDotCmd} {
		cmd := create()
		_, err := cmdtest.Exec(cmd, []string{"1,2", "4,5,6"})
		assert.ErrorIs(t, err, vector.ErrShapeMismatch, cmd.Name())
	}
	_, err := cmdtest.Exec(CreateSumCmd(), []string{"1,2", "1", "1,2,3"})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestBadArguments(t *testing.T) {
	_, err := cmdtest.Exec(CreateAddCmd(), []string{"1,a", "b,2"})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	//
	_, err = cmdtest.Exec(CreateDotCmd(), []string{"1,2"})
	assert.Error(t, err, "expected dot to require two arguments")
}
