package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is the capability set shared by every vector variant and view.
//
// At and SetAt panic when i is outside [0, Len()), the way slice indexing
// does. Get and Set are the checked forms.
type Vector interface {
	Len() int
	At(i int) float64
	SetAt(i int, x float64)
}

// contiguous is implemented by variants whose elements can be exposed as one
// []float64. The returned slice aliases the vector.
type contiguous interface {
	raw() ([]float64, bool)
}

// IsVector reports whether x satisfies the Vector capability set.
func IsVector(x any) bool {
	_, ok := x.(Vector)
	return ok
}

func slab(v Vector) ([]float64, bool) {
	if c, ok := v.(contiguous); ok {
		return c.raw()
	}
	return nil, false
}

// gather returns v's elements as a slice. The bool reports whether the slice
// is v's own storage rather than a copy.
func gather(v Vector) ([]float64, bool) {
	if s, ok := slab(v); ok {
		return s, true
	}
	return ToSlice(v), false
}

// mutate runs fn over dst's elements and writes the result back when dst is
// not contiguous.
func mutate(dst Vector, fn func(d []float64)) {
	d, aliased := gather(dst)
	fn(d)
	if !aliased {
		for i, x := range d {
			dst.SetAt(i, x)
		}
	}
}

func copyInto(dst []float64, v Vector) {
	if s, ok := slab(v); ok {
		copy(dst, s)
		return
	}
	if j, ok := v.(*Joined); ok {
		n := j.a.Len()
		copyInto(dst[:n], j.a)
		copyInto(dst[n:], j.b)
		return
	}
	for i := range dst {
		dst[i] = v.At(i)
	}
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d)", i, n))
	}
}

func formatElems(xs []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
