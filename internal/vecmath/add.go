package vecmath

import algovecmath "github.com/cwbudde/algo-vecmath"

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	algovecmath.AddBlockInPlace(dst, src)
}

// SubBlockInPlace performs in-place element-wise subtraction: dst[i] -= src[i].
// Slices must have equal length. Panics if lengths differ.
func SubBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}
