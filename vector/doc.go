/*
Package vector implements immutable vectors of real numbers.

A Vector is a fixed-length sequence of float64 components. Every “modification”
of a vector (negation, addition, scaling, …) creates a new vector, leaving the
operands unmodified. Binary operations compare the length of their operands and
never coerce: vectors of different length result in an error wrapping
ErrShapeMismatch.

    a := vector.Of(1, 2, 3)
    b := vector.Of(4, 5, 6)
    c, err := a.Add(b) // Vector(5, 7, 9)

Immutable vectors are inherently concurrency-safe. The only state written after
construction is the memoized magnitude, which is set at most once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linalg.vector'.
func tracer() tracing.Trace {
	return tracing.Select("linalg.vector")
}
