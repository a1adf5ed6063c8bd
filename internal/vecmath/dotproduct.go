package vecmath

import algovecmath "github.com/cwbudde/algo-vecmath"

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 for empty slices. Panics if lengths differ.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}
	if len(a) == 0 {
		return 0
	}
	return algovecmath.DotProduct(a, b)
}

// SquaredDistance returns sum((a[i] - b[i])^2).
// Panics if lengths differ.
func SquaredDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
