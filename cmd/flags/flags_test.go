package flags

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/npillmayer/linalg/vector"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  vector.Vector
	}{
		{"Simple", "1,2,3", vector.Of(1, 2, 3)},
		{"Spaces", " 4 , 3 ", vector.Of(4, 3)},
		{"Negative", "-4,3e2,0.5", vector.Of(-4, 300, 0.5)},
		{"Single", "7", vector.Of(7)},
		{"Empty", "", vector.Of()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVector(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestParseVectorErrors(t *testing.T) {
	for _, input := range []string{"1,,2", "a", "1;2"} {
		_, err := ParseVector(input)
		assert.ErrorIs(t, err, strconv.ErrSyntax, "input %q", input)
	}
}

func TestParseVectorsReportsAll(t *testing.T) {
	vs, err := ParseVectors([]string{"1,2", "x", "3,4", "5,y"})
	require.Error(t, err)
	assert.Nil(t, vs)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "argument 2")
	assert.Contains(t, err.Error(), "argument 4")
	//
	vs, err = ParseVectors([]string{"1,2", "3,4"})
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.True(t, vs[1].Equal(vector.Of(3, 4)))
}

func TestVectorFlag(t *testing.T) {
	var vf VectorFlag
	assert.Equal(t, "", vf.String())
	require.NoError(t, vf.Set("-4, 3.5"))
	assert.Equal(t, "-4,3.5", vf.String())
	assert.True(t, vf.Value().Equal(vector.Of(-4, 3.5)))
	assert.Error(t, vf.Set("1,b"))
	assert.True(t, vf.Value().Equal(vector.Of(-4, 3.5)), "failed Set must not change the flag")
}
