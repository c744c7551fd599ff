package vector

// props are the properties of a vector, set by options at creation time and
// handed down to every vector derived from it.
type props struct {
	eager bool // compute magnitude at creation time
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// EagerMagnitude is an option to compute the magnitude of a vector when it is
// created, instead of on first request. Vectors derived from it by arithmetic
// will compute their magnitude eagerly as well.
//
// Use it like this:
//
//     v := vector.New(values, vector.EagerMagnitude())
//
func EagerMagnitude() Option {
	conf := func(p props) props {
		p.eager = true
		return p
	}
	return Option{config: conf}
}
