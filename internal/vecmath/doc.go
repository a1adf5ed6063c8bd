// Package vecmath provides the contiguous []float64 block kernels behind the
// vector package's fast paths.
//
// Kernels that algo-vecmath provides (addition, multiplication, scaling, dot
// product) are delegated to it and inherit its CPU feature selection. The
// remaining kernels are plain Go loops.
//
// All kernels panic when slice lengths differ. Callers are expected to have
// validated shapes already.
package vecmath
