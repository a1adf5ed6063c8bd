package vecmath

import algovecmath "github.com/cwbudde/algo-vecmath"

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	algovecmath.MulBlockInPlace(dst, src)
}

// DivBlockInPlace performs in-place element-wise division: dst[i] /= src[i].
// Division by zero follows IEEE 754. Panics if lengths differ.
func DivBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] /= src[i]
	}
}
