package vector

import "math/rand"

// Generator produces one real number per call. Random calls it once per
// component.
type Generator func() float64

// Seeded returns a generator of pseudo-random numbers in [0.0,1.0). Generators
// created with the same seed produce the same sequence of numbers.
// The generator is not safe for concurrent use.
func Seeded(seed int64) Generator {
	rnd := rand.New(rand.NewSource(seed))
	return rnd.Float64
}

// Constant returns a generator which always produces x.
func Constant(x float64) Generator {
	return func() float64 {
		return x
	}
}
