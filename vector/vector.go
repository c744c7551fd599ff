package vector

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Vector is an immutable vector of real numbers. The zero value is a valid
// vector of length 0.
type Vector struct {
	props
	values []float64
	norm   *norm
}

// norm memoizes the magnitude of a vector. It is shared between all copies of
// a Vector value, which carry identical components.
type norm struct {
	once  sync.Once
	value float64
}

// New creates a vector from an explicit sequence of components. values is
// copied, clients may re-use it afterwards.
func New(values []float64, opts ...Option) Vector {
	return build(slices.Clone(values), opts)
}

// Of creates a vector from its components.
//
//     v := vector.Of(4, 3)
//
func Of(values ...float64) Vector {
	return New(values)
}

// Uniform creates a vector of length size, with every component set to value.
// Panics if size is negative.
func Uniform(size int, value float64, opts ...Option) Vector {
	assertThat(size >= 0, "negative vector size %d", size)
	values := make([]float64, size)
	for i := range values {
		values[i] = value
	}
	return build(values, opts)
}

// Zeros creates a vector of length size with all components 0.
func Zeros(size int, opts ...Option) Vector {
	return Uniform(size, 0, opts...)
}

// Random creates a vector of length size by calling gen exactly size times.
// Component i is the (i+1)-th value produced by gen. The result is as
// deterministic as gen is.
func Random(size int, gen Generator, opts ...Option) Vector {
	assertThat(size >= 0, "negative vector size %d", size)
	assertThat(gen != nil, "random vector requires a generator")
	values := make([]float64, size)
	for i := range values {
		values[i] = gen()
	}
	tracer().Debugf("created random vector of size %d", size)
	return build(values, opts)
}

// build takes ownership of values.
func build(values []float64, opts []Option) Vector {
	v := Vector{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v.derive(values)
}

// derive creates a new vector with the properties of v. It takes ownership of
// values.
func (v Vector) derive(values []float64) Vector {
	w := Vector{props: v.props, values: values, norm: &norm{}}
	if w.eager {
		w.Magnitude()
	}
	return w
}

// --- Access ----------------------------------------------------------------

// Len returns the number of components of v.
func (v Vector) Len() int {
	return len(v.values)
}

// At returns the component at index i. If i is not in [0…Len) an *IndexError
// is returned.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		err := &IndexError{Index: i, Length: len(v.values)}
		tracer().Debugf("%s", err)
		return 0, err
	}
	return v.values[i], nil
}

// Get returns the component at index i, like indexing a slice. It panics with
// an *IndexError if i is out of range.
func (v Vector) Get(i int) float64 {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return x
}

// All returns an iterator over the components of v, in index order.
// Every call to the iterator starts a fresh traversal.
func (v Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v.values {
			if !yield(x) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over index/component pairs of v.
func (v Vector) Enumerate() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range v.values {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a copy of the components of v.
func (v Vector) Values() []float64 {
	return slices.Clone(v.values)
}

// Equal reports whether v and w have the same length and equal components.
func (v Vector) Equal(w Vector) bool {
	return slices.Equal(v.values, w.values)
}

// Magnitude returns the Euclidean norm of v. It is computed on first request
// and then re-used.
func (v Vector) Magnitude() float64 {
	if v.norm == nil { // zero value
		return euclid(v.values)
	}
	v.norm.once.Do(func() {
		v.norm.value = euclid(v.values)
	})
	return v.norm.value
}

func (v Vector) String() string {
	b := strings.Builder{}
	b.WriteString("Vector(")
	for i, x := range v.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Arithmetic ------------------------------------------------------------

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Add returns v + w. v and w must be of the same length, otherwise a
// *ShapeError is returned.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.conform(w); err != nil {
		return Vector{}, err
	}
	sum := make([]float64, len(v.values))
	for i, x := range v.values {
		sum[i] = x + w.values[i]
	}
	return v.derive(sum), nil
}

// Sub returns v - w, which is v + (-w).
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := v.conform(w); err != nil {
		return Vector{}, err
	}
	return v.Add(w.Neg())
}

// Scale returns k·v.
func (v Vector) Scale(k float64) Vector {
	scaled := make([]float64, len(v.values))
	for i, x := range v.values {
		scaled[i] = x * k
	}
	return v.derive(scaled)
}

// Mul returns k·v. It is the same as v.Scale(k).
func Mul(k float64, v Vector) Vector {
	return v.Scale(k)
}

// Div returns v scaled by 1/k. It returns ErrDivideByZero if k is 0,
// instead of producing infinite components.
func (v Vector) Div(k float64) (Vector, error) {
	if k == 0 {
		tracer().Debugf("attempt to divide %s by zero", v)
		return Vector{}, ErrDivideByZero
	}
	return v.Scale(1.0 / k), nil
}

// Dot returns the dot product of v and w. v and w must be of the same length,
// otherwise a *ShapeError is returned.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := v.conform(w); err != nil {
		return 0, err
	}
	var dot float64
	for i, x := range v.values {
		dot += x * w.values[i]
	}
	return dot, nil
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) (float64, error) {
	return a.Dot(b)
}

// Sum adds up vs. All operands have to be of the same length as vs[0]; every
// operand deviating from it is reported in the returned error.
// The sum of no vectors is a vector of length 0.
func Sum(vs ...Vector) (Vector, error) {
	if len(vs) == 0 {
		return Vector{}, nil
	}
	if err := conformAll(vs[0], vs[1:]); err != nil {
		return Vector{}, err
	}
	sum := make([]float64, vs[0].Len())
	for _, w := range vs {
		for i, x := range w.values {
			sum[i] += x
		}
	}
	return vs[0].derive(sum), nil
}
