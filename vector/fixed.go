package vector

import "fmt"

// Vec1 is a 1-dimensional vector stored inline.
type Vec1 [1]float64

// Vec2 is a 2-dimensional vector stored inline.
type Vec2 [2]float64

// Vec3 is a 3-dimensional vector stored inline.
type Vec3 [3]float64

// Vec4 is a 4-dimensional vector stored inline.
type Vec4 [4]float64

// NewVec1 returns a Vec1 with component x.
func NewVec1(x float64) *Vec1 { return &Vec1{x} }

// NewVec2 returns a Vec2 with components x and y.
func NewVec2(x, y float64) *Vec2 { return &Vec2{x, y} }

// NewVec3 returns a Vec3 with components x, y and z.
func NewVec3(x, y, z float64) *Vec3 { return &Vec3{x, y, z} }

// NewVec4 returns a Vec4 with components x, y, z and w.
func NewVec4(x, y, z, w float64) *Vec4 { return &Vec4{x, y, z, w} }

// Vec1From builds a Vec1 from a numeric scalar or from any source Convert
// accepts. A source whose length is not 1 fails with ErrShapeMismatch.
func Vec1From(src any) (*Vec1, error) {
	var v Vec1
	if s, ok := toScalar(src); ok {
		v[0] = s
		return &v, nil
	}
	if err := fillFixed(v[:], src); err != nil {
		return nil, err
	}
	return &v, nil
}

// Vec2From builds a Vec2 from any source Convert accepts. Sources whose
// length is not 2, and bare scalars, fail with ErrShapeMismatch.
func Vec2From(src any) (*Vec2, error) {
	var v Vec2
	if err := fillFixed(v[:], src); err != nil {
		return nil, err
	}
	return &v, nil
}

// Vec3From builds a Vec3 from any source Convert accepts. Sources whose
// length is not 3, and bare scalars, fail with ErrShapeMismatch.
func Vec3From(src any) (*Vec3, error) {
	var v Vec3
	if err := fillFixed(v[:], src); err != nil {
		return nil, err
	}
	return &v, nil
}

// Vec4From builds a Vec4 from any source Convert accepts. Sources whose
// length is not 4, and bare scalars, fail with ErrShapeMismatch.
func Vec4From(src any) (*Vec4, error) {
	var v Vec4
	if err := fillFixed(v[:], src); err != nil {
		return nil, err
	}
	return &v, nil
}

// fillFixed copies src into dst only once the length is known to match, so
// a failed construction never leaves a partially filled vector behind.
func fillFixed(dst []float64, src any) error {
	if _, ok := toScalar(src); ok {
		return fmt.Errorf("%w: a scalar cannot initialise a %d-dimensional vector", ErrShapeMismatch, len(dst))
	}
	v, ok := src.(Vector)
	if !ok {
		var err error
		if v, err = Convert(src); err != nil {
			return err
		}
	}
	if v.Len() != len(dst) {
		return shapeError(len(dst), v.Len())
	}
	copyInto(dst, v)
	return nil
}

func (v *Vec1) Len() int               { return 1 }
func (v *Vec1) At(i int) float64       { return v[i] }
func (v *Vec1) SetAt(i int, x float64) { v[i] = x }
func (v *Vec1) raw() ([]float64, bool) { return v[:], true }
func (v *Vec1) String() string         { return formatElems(v[:]) }

// X returns the first component.
func (v *Vec1) X() float64 { return v[0] }

func (v *Vec2) Len() int               { return 2 }
func (v *Vec2) At(i int) float64       { return v[i] }
func (v *Vec2) SetAt(i int, x float64) { v[i] = x }
func (v *Vec2) raw() ([]float64, bool) { return v[:], true }
func (v *Vec2) String() string         { return formatElems(v[:]) }

func (v *Vec2) X() float64 { return v[0] }
func (v *Vec2) Y() float64 { return v[1] }

func (v *Vec3) Len() int               { return 3 }
func (v *Vec3) At(i int) float64       { return v[i] }
func (v *Vec3) SetAt(i int, x float64) { v[i] = x }
func (v *Vec3) raw() ([]float64, bool) { return v[:], true }
func (v *Vec3) String() string         { return formatElems(v[:]) }

func (v *Vec3) X() float64 { return v[0] }
func (v *Vec3) Y() float64 { return v[1] }
func (v *Vec3) Z() float64 { return v[2] }

func (v *Vec4) Len() int               { return 4 }
func (v *Vec4) At(i int) float64       { return v[i] }
func (v *Vec4) SetAt(i int, x float64) { v[i] = x }
func (v *Vec4) raw() ([]float64, bool) { return v[:], true }
func (v *Vec4) String() string         { return formatElems(v[:]) }

func (v *Vec4) X() float64 { return v[0] }
func (v *Vec4) Y() float64 { return v[1] }
func (v *Vec4) Z() float64 { return v[2] }
func (v *Vec4) W() float64 { return v[3] }

// dotFixed computes the dot product of two same-dimension fixed vectors
// without going through the block kernels.
func dotFixed(a, b Vector) (float64, bool) {
	switch x := a.(type) {
	case *Vec1:
		if y, ok := b.(*Vec1); ok {
			return x[0] * y[0], true
		}
	case *Vec2:
		if y, ok := b.(*Vec2); ok {
			return x[0]*y[0] + x[1]*y[1], true
		}
	case *Vec3:
		if y, ok := b.(*Vec3); ok {
			return x[0]*y[0] + x[1]*y[1] + x[2]*y[2], true
		}
	case *Vec4:
		if y, ok := b.(*Vec4); ok {
			return x[0]*y[0] + x[1]*y[1] + x[2]*y[2] + x[3]*y[3], true
		}
	}
	return 0, false
}
