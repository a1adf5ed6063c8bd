package vector

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vec/internal/vecmath"
)

// Dot returns the sum of the element-wise products of a and b.
func Dot(a, b Vector) (float64, error) {
	if err := sameLen("dot", a, b); err != nil {
		return 0, err
	}
	return dot(a, b), nil
}

func dot(a, b Vector) float64 {
	if d, ok := dotFixed(a, b); ok {
		return d
	}
	x, _ := gather(a)
	y, _ := gather(b)
	return vecmath.DotProduct(x, y)
}

// MagnitudeSquared returns dot(v, v). Prefer it over Magnitude when only
// relative comparisons are needed.
func MagnitudeSquared(v Vector) float64 {
	return dot(v, v)
}

// Squares of elements outside this range overflow or underflow.
const (
	normTiny = 1e-150
	normHuge = 1e150
)

// Magnitude returns the Euclidean norm of v. Elements too large or too small
// to square are rescaled by the largest absolute element first, so the
// result stays finite and non-zero whenever the true norm is.
func Magnitude(v Vector) float64 {
	x, _ := gather(v)
	m := vecmath.MaxAbs(x)
	if math.IsInf(m, 0) {
		return m
	}
	if m == 0 || (m > normTiny && m < normHuge) {
		return math.Sqrt(dot(v, v))
	}
	var s float64
	for _, e := range x {
		r := e / m
		s += r * r
	}
	return m * math.Sqrt(s)
}

// unitSlice returns the elements of v divided by mag.
func unitSlice(v Vector, mag float64) []float64 {
	out := ToSlice(v)
	vecmath.DivScalarBlockInPlace(out, mag)
	return out
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Vector) (float64, error) {
	if err := sameLen("distance", a, b); err != nil {
		return 0, err
	}
	x, _ := gather(a)
	y, _ := gather(b)
	return vecmath.SquaredDistance(x, y), nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) (float64, error) {
	d2, err := DistanceSquared(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d2), nil
}

// Angle returns the angle between a and b in radians, in [0, π].
// A zero-magnitude operand fails with ErrZeroMagnitude.
func Angle(a, b Vector) (float64, error) {
	if err := sameLen("angle", a, b); err != nil {
		return 0, err
	}
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("%w: angle is undefined", ErrZeroMagnitude)
	}
	d := vecmath.DotProduct(unitSlice(a, ma), unitSlice(b, mb))
	// Rounding can push the cosine just outside [-1, 1].
	c := math.Max(-1, math.Min(1, d))
	return math.Acos(c), nil
}

// ApproxEqual reports whether every element pair differs by no more than the
// configured epsilon (DefaultEpsilon unless WithEpsilon is given). Vectors of
// different lengths are never approximately equal. Equal infinities compare
// equal; NaN elements compare unequal.
func ApproxEqual(a, b Vector, opts ...Option) bool {
	if a.Len() != b.Len() {
		return false
	}
	eps := ApplyOptions(opts...).Epsilon
	for i := range a.Len() {
		x, y := a.At(i), b.At(i)
		if x == y {
			continue
		}
		if !(math.Abs(x-y) <= eps) {
			return false
		}
	}
	return true
}

// Equals reports exact element-wise equality.
func Equals(a, b Vector) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// IsNormalised reports whether v's magnitude is within epsilon of 1.
func IsNormalised(v Vector, opts ...Option) bool {
	eps := ApplyOptions(opts...).Epsilon
	return math.Abs(Magnitude(v)-1) <= eps
}

// ElementSum returns the sum of v's elements.
func ElementSum(v Vector) float64 {
	x, _ := gather(v)
	return vecmath.Sum(x)
}

// MaxAbs returns the largest absolute element of v, or 0 when v is empty.
func MaxAbs(v Vector) float64 {
	x, _ := gather(v)
	return vecmath.MaxAbs(x)
}
