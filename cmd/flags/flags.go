package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/npillmayer/linalg/vector"
)

// ParseVector parses a comma separated list of components. The empty string
// denotes a vector of length 0.
func ParseVector(s string) (vector.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vector.New(nil), nil
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("component %d of vector %q: %w", i, s, err)
		}
		values[i] = x
	}
	return vector.New(values), nil
}

// ParseVectors parses every argument with ParseVector. All failing arguments
// are reported.
func ParseVectors(args []string) ([]vector.Vector, error) {
	var (
		vs   = make([]vector.Vector, len(args))
		errs error
	)
	for i, arg := range args {
		v, err := ParseVector(arg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("argument %d: %w", i+1, err))
			continue
		}
		vs[i] = v
	}
	if errs != nil {
		return nil, errs
	}
	return vs, nil
}

// FormatScalar formats a scalar result with the shortest exact representation.
func FormatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// VectorFlag manages a flag to get a vector.
type VectorFlag struct {
	v   vector.Vector
	set bool
}

var _ pflag.Value = (*VectorFlag)(nil)

func (vf VectorFlag) String() string {
	if !vf.set {
		return ""
	}
	ss := make([]string, 0, vf.v.Len())
	for x := range vf.v.All() {
		ss = append(ss, FormatScalar(x))
	}
	return strings.Join(ss, ",")
}

// Set implements pflag.Value.
func (vf *VectorFlag) Set(s string) error {
	v, err := ParseVector(s)
	if err != nil {
		return err
	}
	vf.v, vf.set = v, true
	return nil
}

// Type implements pflag.Value.
func (vf VectorFlag) Type() string {
	return "x,y,…"
}

// Value returns the flag value.
func (vf VectorFlag) Value() vector.Vector {
	return vf.v
}
