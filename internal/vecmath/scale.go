package vecmath

import algovecmath "github.com/cwbudde/algo-vecmath"

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	algovecmath.ScaleBlockInPlace(dst, scale)
}

// DivScalarBlockInPlace divides each element by a scalar in-place: dst[i] /= d.
// Unlike scaling by 1/d this keeps the exact quotient for every element.
func DivScalarBlockInPlace(dst []float64, d float64) {
	for i := range dst {
		dst[i] /= d
	}
}
