package vecmath

import (
	"math"
	"strconv"
)

var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"4", 4},
	{"16", 16},
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}

func closeEnough(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// fillPair returns two deterministic slices of length n with no zeros in b.
func fillPair(n int) (a, b []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	for i := range a {
		a[i] = float64(i) + 0.5
		b[i] = float64(n-i)*0.1 + 0.25
	}
	return a, b
}

func expectPanic(t interface{ Error(...any) }, name string, fn func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Error(name + " should panic on mismatched lengths")
		}
	}()
	fn()
}
