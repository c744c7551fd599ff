package vector

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

func euclid(values []float64) float64 {
	var sq float64
	for _, x := range values {
		sq += x * x
	}
	return math.Sqrt(sq)
}

func (v Vector) conform(w Vector) error {
	if len(v.values) == len(w.values) {
		return nil
	}
	err := &ShapeError{Left: len(v.values), Right: len(w.values), left: v, right: w}
	tracer().Debugf("%s", err)
	return err
}

// conformAll collects a shape error for every vector in vs not of the length of v.
func conformAll(v Vector, vs []Vector) (errs error) {
	for _, w := range vs {
		errs = multierr.Append(errs, v.conform(w))
	}
	return errs
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
