package vector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRandomIsReproducible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linalg.vector")
	defer teardown()
	//
	gen1, gen2 := Seeded(0), Seeded(0)
	v := Random(3, gen1)
	want := Of(gen2(), gen2(), gen2())
	if !v.Equal(want) {
		t.Errorf("expected random vector to be %s, is %s", want, v)
	}
}

func TestRandomCallsGeneratorInOrder(t *testing.T) {
	calls := 0
	counter := func() float64 {
		calls++
		return float64(calls)
	}
	v := Random(4, counter)
	assert.Equal(t, 4, calls)
	assert.True(t, v.Equal(Of(1, 2, 3, 4)), "have %s", v)
	//
	calls = 0
	Random(0, counter)
	assert.Equal(t, 0, calls)
}

func TestConstantGenerator(t *testing.T) {
	v := Random(3, Constant(1.5))
	assert.True(t, v.Equal(Uniform(3, 1.5)))
}
