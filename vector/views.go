package vector

import "fmt"

// SubVector is a view of the range [start, end) of a parent vector. It owns
// no storage: writes through the view land in the parent and the parent's
// writes are visible through the view.
type SubVector struct {
	parent     Vector
	start, end int
}

// Subvector returns a view of v[start:end). Bounds outside [0, v.Len()] or
// start > end fail with ErrIndexOutOfRange. A sub-range of a SubVector
// refers directly to the underlying parent.
func Subvector(v Vector, start, end int) (*SubVector, error) {
	if start < 0 || end > v.Len() || start > end {
		return nil, fmt.Errorf("%w: range [%d:%d) of length %d", ErrIndexOutOfRange, start, end, v.Len())
	}
	if s, ok := v.(*SubVector); ok {
		return &SubVector{parent: s.parent, start: s.start + start, end: s.start + end}, nil
	}
	return &SubVector{parent: v, start: start, end: end}, nil
}

func (s *SubVector) Len() int { return s.end - s.start }

func (s *SubVector) At(i int) float64 {
	checkIndex(i, s.Len())
	return s.parent.At(s.start + i)
}

func (s *SubVector) SetAt(i int, x float64) {
	checkIndex(i, s.Len())
	s.parent.SetAt(s.start+i, x)
}

func (s *SubVector) raw() ([]float64, bool) {
	p, ok := slab(s.parent)
	if !ok {
		return nil, false
	}
	return p[s.start:s.end:s.end], true
}

// Parent returns the vector the view aliases.
func (s *SubVector) Parent() Vector { return s.parent }

// Offset returns the parent index of the view's first element.
func (s *SubVector) Offset() int { return s.start }

func (s *SubVector) String() string { return formatElems(ToSlice(s)) }

// Joined presents a followed by b as one vector without copying either.
type Joined struct {
	a, b Vector
}

// Join returns a view of a followed by b. Index i resolves to a when
// i < a.Len() and to b at i - a.Len() otherwise.
func Join(a, b Vector) *Joined {
	return &Joined{a: a, b: b}
}

func (j *Joined) Len() int { return j.a.Len() + j.b.Len() }

func (j *Joined) At(i int) float64 {
	checkIndex(i, j.Len())
	if n := j.a.Len(); i >= n {
		return j.b.At(i - n)
	}
	return j.a.At(i)
}

func (j *Joined) SetAt(i int, x float64) {
	checkIndex(i, j.Len())
	if n := j.a.Len(); i >= n {
		j.b.SetAt(i-n, x)
		return
	}
	j.a.SetAt(i, x)
}

// Parts returns the two joined vectors in order.
func (j *Joined) Parts() (Vector, Vector) { return j.a, j.b }

func (j *Joined) String() string { return formatElems(ToSlice(j)) }
