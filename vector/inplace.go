package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vec/internal/vecmath"
)

// Binary operations validate lengths before touching dst, so a failed call
// leaves dst unchanged. Operands that partially overlap the same storage
// (for example two shifted views of one parent) give unspecified results.

// AssignInPlace copies every element of src into dst.
func AssignInPlace(dst, src Vector) (Vector, error) {
	if err := sameLen("assign", dst, src); err != nil {
		return nil, err
	}
	if d, ok := slab(dst); ok {
		copyInto(d, src)
		return dst, nil
	}
	for i, x := range ToSlice(src) {
		dst.SetAt(i, x)
	}
	return dst, nil
}

// AddInPlace adds src to dst element-wise.
func AddInPlace(dst, src Vector) (Vector, error) {
	return binaryInPlace("add", dst, src, vecmath.AddBlockInPlace)
}

// SubInPlace subtracts src from dst element-wise.
func SubInPlace(dst, src Vector) (Vector, error) {
	return binaryInPlace("sub", dst, src, vecmath.SubBlockInPlace)
}

// AddMultipleInPlace sets dst[i] += src[i] * factor.
func AddMultipleInPlace(dst, src Vector, factor float64) (Vector, error) {
	return binaryInPlace("add-multiple", dst, src, func(d, s []float64) {
		vecmath.AddScaledBlockInPlace(d, s, factor)
	})
}

// MulInPlace multiplies dst by operand. A numeric scalar (including a Scalar)
// scales every element; a vector, or anything Convert accepts, multiplies
// element-wise. Scalars are recognised first, so a Vec1 is a vector operand.
func MulInPlace(dst Vector, operand any) (Vector, error) {
	if s, ok := toScalar(operand); ok {
		return ScaleInPlace(dst, s), nil
	}
	v, err := vectorOperand(operand)
	if err != nil {
		return nil, err
	}
	return binaryInPlace("mul", dst, v, vecmath.MulBlockInPlace)
}

// DivInPlace divides dst by operand, with the same scalar/vector dispatch as
// MulInPlace. Division by zero follows IEEE 754.
func DivInPlace(dst Vector, operand any) (Vector, error) {
	if s, ok := toScalar(operand); ok {
		mutate(dst, func(d []float64) { vecmath.DivScalarBlockInPlace(d, s) })
		return dst, nil
	}
	v, err := vectorOperand(operand)
	if err != nil {
		return nil, err
	}
	return binaryInPlace("div", dst, v, vecmath.DivBlockInPlace)
}

// ScaleInPlace multiplies every element of dst by factor.
func ScaleInPlace(dst Vector, factor float64) Vector {
	mutate(dst, func(d []float64) { vecmath.ScaleBlockInPlace(d, factor) })
	return dst
}

// ScaleAddInPlace sets dst[i] = dst[i]*factor + other[i].
func ScaleAddInPlace(dst Vector, factor float64, other Vector) (Vector, error) {
	return binaryInPlace("scale-add", dst, other, func(d, s []float64) {
		vecmath.ScaleAddBlockInPlace(d, factor, s)
	})
}

// AddWeightedInPlace moves dst toward src: dst[i] = dst[i]*(1-weight) +
// src[i]*weight. weight is not clamped; values outside [0, 1] extrapolate.
func AddWeightedInPlace(dst, src Vector, weight float64) (Vector, error) {
	return binaryInPlace("add-weighted", dst, src, func(d, s []float64) {
		vecmath.LerpBlockInPlace(d, s, weight)
	})
}

// NormaliseInPlace scales v to unit magnitude. A zero vector fails with
// ErrZeroMagnitude and is left unchanged.
func NormaliseInPlace(v Vector) (Vector, error) {
	if _, err := NormaliseGetMagnitude(v); err != nil {
		return nil, err
	}
	return v, nil
}

// NormaliseGetMagnitude normalises v in place and returns its magnitude
// before normalisation.
func NormaliseGetMagnitude(v Vector) (float64, error) {
	mag := Magnitude(v)
	if mag == 0 {
		return 0, fmt.Errorf("%w: cannot normalise", ErrZeroMagnitude)
	}
	mutate(v, func(d []float64) { vecmath.DivScalarBlockInPlace(d, mag) })
	return mag, nil
}

// NegateInPlace flips the sign of every element.
func NegateInPlace(v Vector) Vector {
	mutate(v, vecmath.NegateBlockInPlace)
	return v
}

// AbsInPlace replaces every element by its absolute value.
func AbsInPlace(v Vector) Vector {
	mutate(v, vecmath.AbsBlockInPlace)
	return v
}

// FillInPlace sets every element to x.
func FillInPlace(v Vector, x float64) Vector {
	if d, ok := slab(v); ok {
		vecmath.Fill(d, x)
		return v
	}
	for i := range v.Len() {
		v.SetAt(i, x)
	}
	return v
}

// CrossProductInPlace sets a to a × b. Both operands must be 3-dimensional,
// otherwise it fails with ErrShapeMismatch.
func CrossProductInPlace(a, b Vector) (Vector, error) {
	if a.Len() != 3 || b.Len() != 3 {
		return nil, fmt.Errorf("%w: cross product of lengths %d and %d, want 3", ErrShapeMismatch, a.Len(), b.Len())
	}
	x1, y1, z1 := a.At(0), a.At(1), a.At(2)
	x2, y2, z2 := b.At(0), b.At(1), b.At(2)
	a.SetAt(0, y1*z2-z1*y2)
	a.SetAt(1, z1*x2-x1*z2)
	a.SetAt(2, x1*y2-y1*x2)
	return a, nil
}

func binaryInPlace(op string, dst, src Vector, kernel func(d, s []float64)) (Vector, error) {
	if err := sameLen(op, dst, src); err != nil {
		return nil, err
	}
	s, _ := gather(src)
	mutate(dst, func(d []float64) { kernel(d, s) })
	return dst, nil
}

func vectorOperand(operand any) (Vector, error) {
	if v, ok := operand.(Vector); ok {
		return v, nil
	}
	return Convert(operand)
}
