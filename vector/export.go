package vector

import "iter"

// Clone returns an independent copy of v. Fixed-size vectors keep their
// type; every other variant, views included, becomes a *Dense.
func Clone(v Vector) Vector {
	switch t := v.(type) {
	case *Vec1:
		c := *t
		return &c
	case *Vec2:
		c := *t
		return &c
	case *Vec3:
		c := *t
		return &c
	case *Vec4:
		c := *t
		return &c
	}
	return Wrap(ToSlice(v))
}

// ToSlice returns a newly allocated copy of v's elements.
func ToSlice(v Vector) []float64 {
	out := make([]float64, v.Len())
	copyInto(out, v)
	return out
}

// ToList returns v's elements as a generic ordered collection.
func ToList(v Vector) []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Values returns an iterator over v's elements in order.
func Values(v Vector) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range v.Len() {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// All returns an iterator over v's index/element pairs.
func All(v Vector) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := range v.Len() {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}
