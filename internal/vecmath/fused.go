package vecmath

// AddScaledBlockInPlace accumulates a scaled block: dst[i] += src[i] * factor.
// Slices must have equal length. Panics if lengths differ.
func AddScaledBlockInPlace(dst, src []float64, factor float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i] * factor
	}
}

// ScaleAddBlockInPlace scales dst and adds src: dst[i] = dst[i]*factor + src[i].
// Slices must have equal length. Panics if lengths differ.
func ScaleAddBlockInPlace(dst []float64, factor float64, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = dst[i]*factor + src[i]
	}
}

// LerpBlockInPlace moves dst toward src: dst[i] = dst[i]*(1-w) + src[i]*w.
// w is not clamped; values outside [0, 1] extrapolate.
// Slices must have equal length. Panics if lengths differ.
func LerpBlockInPlace(dst, src []float64, w float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	keep := 1 - w
	for i := range dst {
		dst[i] = dst[i]*keep + src[i]*w
	}
}
