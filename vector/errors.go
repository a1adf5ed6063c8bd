package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports a source whose length does not fit a fixed
	// dimension, or a 3-dimensional operation applied to another length.
	ErrShapeMismatch = errors.New("vector: shape mismatch")

	// ErrDimensionMismatch reports binary operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange reports an element index or view bound outside the
	// vector.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrUnsupportedConversion reports an input no registered converter
	// accepts.
	ErrUnsupportedConversion = errors.New("vector: unsupported conversion")

	// ErrZeroMagnitude reports normalisation or an angle involving a zero
	// vector.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")
)

func dimensionError(op string, a, b int) error {
	return fmt.Errorf("%w: %s of lengths %d and %d", ErrDimensionMismatch, op, a, b)
}

func shapeError(want, got int) error {
	return fmt.Errorf("%w: want length %d, got %d", ErrShapeMismatch, want, got)
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}

func sameLen(op string, a, b Vector) error {
	if a.Len() != b.Len() {
		return dimensionError(op, a.Len(), b.Len())
	}
	return nil
}
