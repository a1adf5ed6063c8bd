package vector

import "fmt"

// Get returns v[i], or ErrIndexOutOfRange.
func Get(v Vector, i int) (float64, error) {
	if uint(i) >= uint(v.Len()) {
		return 0, indexError(i, v.Len())
	}
	return v.At(i), nil
}

// Get2 addresses v as a 1×n row: i selects the row and must be 0, j selects
// the element.
func Get2(v Vector, i, j int) (float64, error) {
	if i != 0 {
		return 0, fmt.Errorf("%w: row %d of a 1x%d vector", ErrIndexOutOfRange, i, v.Len())
	}
	return Get(v, j)
}

// Set assigns v[i] = x and returns v, or fails with ErrIndexOutOfRange
// without touching v.
func Set(v Vector, i int, x float64) (Vector, error) {
	if uint(i) >= uint(v.Len()) {
		return nil, indexError(i, v.Len())
	}
	v.SetAt(i, x)
	return v, nil
}
