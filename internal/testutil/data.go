// Package testutil holds deterministic data generators and tolerance
// assertions shared by the package tests.
package testutil

import "math/rand"

// Noise returns n uniform values in [-amplitude, amplitude) drawn from a
// fixed seed, so tests are reproducible.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NonZeroNoise is Noise with every element pushed at least minAbs away from
// zero. Useful as a divisor.
func NonZeroNoise(seed int64, amplitude, minAbs float64, n int) []float64 {
	out := Noise(seed, amplitude, n)
	for i, v := range out {
		switch {
		case v >= 0 && v < minAbs:
			out[i] = minAbs
		case v < 0 && v > -minAbs:
			out[i] = -minAbs
		}
	}
	return out
}

// Ramp returns start, start+step, ... with n elements.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
