package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is the error kind of binary operations on vectors of
	// different length.
	ErrShapeMismatch = errors.New("vector: shape mismatch")

	// ErrDivideByZero is returned when dividing a vector by 0.
	ErrDivideByZero = errors.New("vector: divide by zero")

	// ErrIndexOutOfBounds is the error kind of access to non-existing components.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
)

// ShapeError indicates operands of different length.
// errors.Is(err, ErrShapeMismatch) holds for it.
type ShapeError struct {
	Left  int // length of the receiver
	Right int // length of the argument
	left  Vector
	right Vector
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("vector: vectors must be of same size: %s (%d) vs %s (%d)",
		e.left, e.Left, e.right, e.Right)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// IndexError indicates access to a component outside of [0…Length).
// errors.Is(err, ErrIndexOutOfBounds) holds for it.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index out of bounds: %d with length %d", e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
