package vecmath

import "math"

// NegateBlockInPlace flips the sign of every element.
func NegateBlockInPlace(dst []float64) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// AbsBlockInPlace replaces every element by its absolute value.
func AbsBlockInPlace(dst []float64) {
	for i := range dst {
		dst[i] = math.Abs(dst[i])
	}
}

// Fill sets every element of dst to value.
func Fill(dst []float64, value float64) {
	for i := range dst {
		dst[i] = value
	}
}
