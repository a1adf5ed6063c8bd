package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vec/internal/testutil"
)

func TestInPlaceBinary(t *testing.T) {
	tests := []struct {
		name string
		op   func(dst, src Vector) (Vector, error)
		want []float64
	}{
		{"AssignInPlace", AssignInPlace, []float64{4, 5, 6}},
		{"AddInPlace", AddInPlace, []float64{5, 7, 9}},
		{"SubInPlace", SubInPlace, []float64{-3, -3, -3}},
		{"AddMultipleInPlace", func(d, s Vector) (Vector, error) { return AddMultipleInPlace(d, s, 2) }, []float64{9, 12, 15}},
		{"MulInPlace", func(d, s Vector) (Vector, error) { return MulInPlace(d, s) }, []float64{4, 10, 18}},
		{"DivInPlace", func(d, s Vector) (Vector, error) { return DivInPlace(d, s) }, []float64{0.25, 0.4, 0.5}},
		{"ScaleAddInPlace", func(d, s Vector) (Vector, error) { return ScaleAddInPlace(d, 10, s) }, []float64{14, 25, 36}},
		{"AddWeightedInPlace", func(d, s Vector) (Vector, error) { return AddWeightedInPlace(d, s, 0.5) }, []float64{2.5, 3.5, 4.5}},
	}

	variants := map[string]func() Vector{
		"Dense": func() Vector { return Of(1, 2, 3) },
		"Vec3":  func() Vector { return NewVec3(1, 2, 3) },
		"Joined": func() Vector {
			return Join(NewVec1(1), Of(2, 3))
		},
	}

	for _, tt := range tests {
		for vname, mk := range variants {
			t.Run(tt.name+"/"+vname, func(t *testing.T) {
				dst := mk()
				got, err := tt.op(dst, Of(4, 5, 6))
				require.NoError(t, err)
				assert.Same(t, dst, got)
				assert.InDeltaSlice(t, tt.want, ToSlice(dst), 1e-12)
			})
		}
	}
}

func TestInPlaceBinaryDimensionMismatch(t *testing.T) {
	ops := map[string]func(dst, src Vector) (Vector, error){
		"AssignInPlace": AssignInPlace,
		"AddInPlace":    AddInPlace,
		"SubInPlace":    SubInPlace,
		"AddMultiple":   func(d, s Vector) (Vector, error) { return AddMultipleInPlace(d, s, 1) },
		"Mul":           func(d, s Vector) (Vector, error) { return MulInPlace(d, s) },
		"Div":           func(d, s Vector) (Vector, error) { return DivInPlace(d, s) },
		"ScaleAdd":      func(d, s Vector) (Vector, error) { return ScaleAddInPlace(d, 1, s) },
		"AddWeighted":   func(d, s Vector) (Vector, error) { return AddWeightedInPlace(d, s, 1) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			dst := Of(1, 2, 3)
			_, err := op(dst, Of(1, 2))
			require.ErrorIs(t, err, ErrDimensionMismatch)
			assert.Equal(t, []float64{1, 2, 3}, dst.Data(), "failed op must not mutate")
		})
	}
}

func TestMulDivScalarDispatch(t *testing.T) {
	v := Of(2, 4)
	_, err := MulInPlace(v, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12}, v.Data())

	_, err = DivInPlace(v, float32(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, v.Data())

	_, err = MulInPlace(v, celsius(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12}, v.Data())

	_, err = DivInPlace(v, meters(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, v.Data())

	_, err = MulInPlace(v, count(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12}, v.Data())

	// A one-element vector is a vector operand, not a scalar.
	_, err = MulInPlace(v, NewVec1(2))
	require.ErrorIs(t, err, ErrDimensionMismatch)

	one := NewVec1(5)
	_, err = MulInPlace(one, NewVec1(2))
	require.NoError(t, err)
	assert.Equal(t, 10.0, one.X())

	_, err = MulInPlace(v, []float64{0.5, 0.25})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, v.Data())

	_, err = MulInPlace(v, "2")
	require.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestUnaryInPlace(t *testing.T) {
	v := Of(-1, 2, -3)

	assert.Same(t, v, NegateInPlace(v))
	assert.Equal(t, []float64{1, -2, 3}, v.Data())

	assert.Same(t, v, AbsInPlace(v))
	assert.Equal(t, []float64{1, 2, 3}, v.Data())

	assert.Same(t, v, ScaleInPlace(v, -2))
	assert.Equal(t, []float64{-2, -4, -6}, v.Data())

	assert.Same(t, v, FillInPlace(v, 0.5))
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, v.Data())
}

func TestAddWeightedExtrapolates(t *testing.T) {
	v := NewVec2(0, 10)
	_, err := AddWeightedInPlace(v, NewVec2(1, 20), 2)
	require.NoError(t, err)
	assert.Equal(t, Vec2{2, 30}, *v)
}

func TestNormalise(t *testing.T) {
	v := NewVec2(3, 4)
	n, err := Normalise(v)
	require.NoError(t, err)
	assert.True(t, ApproxEqual(n, NewVec2(0.6, 0.8), WithEpsilon(1e-9)))
	assert.Equal(t, Vec2{3, 4}, *v, "pure Normalise must not mutate")

	mag, err := NormaliseGetMagnitude(v)
	require.NoError(t, err)
	assert.Equal(t, 5.0, mag)
	assert.True(t, IsNormalised(v))
}

func TestNormaliseZero(t *testing.T) {
	v := Of(0, 0, 0)
	_, err := NormaliseInPlace(v)
	require.ErrorIs(t, err, ErrZeroMagnitude)
	assert.Equal(t, []float64{0, 0, 0}, v.Data())

	_, err = NormaliseGetMagnitude(New(0))
	require.ErrorIs(t, err, ErrZeroMagnitude)
}

func TestNormaliseProperty(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		v := Wrap(testutil.Noise(seed, 100, int(seed)))
		_, err := NormaliseInPlace(v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, Magnitude(v), 1e-12)
	}
}

func TestNormaliseExtremeMagnitudes(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-200, 1e200, 1e300} {
		v := Of(x, x)
		mag, err := NormaliseGetMagnitude(v)
		require.NoError(t, err, "x=%g", x)
		assert.False(t, math.IsInf(mag, 0), "x=%g", x)
		assert.Greater(t, mag, 0.0, "x=%g", x)
		assert.InDelta(t, math.Sqrt2/2, v.At(0), 1e-12, "x=%g", x)
		assert.InDelta(t, math.Sqrt2/2, v.At(1), 1e-12, "x=%g", x)
		assert.True(t, IsNormalised(v), "x=%g", x)
	}
}

func TestCrossProduct(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	z, err := CrossProduct(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, ToSlice(z))
	assert.Equal(t, Vec3{1, 0, 0}, *x)

	// Aliased operands: a × a is zero.
	a := Of(1, 2, 3)
	_, err = CrossProductInPlace(a, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, a.Data())
}

func TestCrossProductOrthogonal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		a := Wrap(testutil.Noise(seed, 10, 3))
		b := Wrap(testutil.Noise(seed+100, 10, 3))

		c, err := CrossProduct(a, b)
		require.NoError(t, err)

		da, err := Dot(c, a)
		require.NoError(t, err)
		db, err := Dot(c, b)
		require.NoError(t, err)
		assert.InDelta(t, 0, da, 1e-9)
		assert.InDelta(t, 0, db, 1e-9)
	}
}

func TestCrossProductShape(t *testing.T) {
	_, err := CrossProductInPlace(NewVec2(1, 2), NewVec3(1, 2, 3))
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = CrossProduct(NewVec3(1, 2, 3), Of(1, 2, 3, 4))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

// TestPureMatchesInPlace checks op(a, ...) == apply(opInPlace, clone(a), ...)
// bit for bit, and that the pure form leaves its input alone.
func TestPureMatchesInPlace(t *testing.T) {
	a := testutil.Noise(3, 5, 17)
	b := testutil.NonZeroNoise(4, 5, 0.1, 17)

	tests := []struct {
		name    string
		pure    func(a, b Vector) (Vector, error)
		inPlace func(a, b Vector) (Vector, error)
	}{
		{"Add", Add, AddInPlace},
		{"Sub", Sub, SubInPlace},
		{"AddMultiple",
			func(a, b Vector) (Vector, error) { return AddMultiple(a, b, 1.5) },
			func(a, b Vector) (Vector, error) { return AddMultipleInPlace(a, b, 1.5) }},
		{"Mul",
			func(a, b Vector) (Vector, error) { return Mul(a, b) },
			func(a, b Vector) (Vector, error) { return MulInPlace(a, b) }},
		{"MulScalar",
			func(a, _ Vector) (Vector, error) { return Mul(a, math.Pi) },
			func(a, _ Vector) (Vector, error) { return MulInPlace(a, math.Pi) }},
		{"Div",
			func(a, b Vector) (Vector, error) { return Div(a, b) },
			func(a, b Vector) (Vector, error) { return DivInPlace(a, b) }},
		{"DivScalar",
			func(a, _ Vector) (Vector, error) { return Div(a, 3) },
			func(a, _ Vector) (Vector, error) { return DivInPlace(a, 3) }},
		{"Scale",
			func(a, _ Vector) (Vector, error) { return Scale(a, -0.3), nil },
			func(a, _ Vector) (Vector, error) { return ScaleInPlace(a, -0.3), nil }},
		{"ScaleAdd",
			func(a, b Vector) (Vector, error) { return ScaleAdd(a, 0.7, b) },
			func(a, b Vector) (Vector, error) { return ScaleAddInPlace(a, 0.7, b) }},
		{"AddWeighted",
			func(a, b Vector) (Vector, error) { return AddWeighted(a, b, 0.25) },
			func(a, b Vector) (Vector, error) { return AddWeightedInPlace(a, b, 0.25) }},
		{"Normalise",
			func(a, _ Vector) (Vector, error) { return Normalise(a) },
			func(a, _ Vector) (Vector, error) { return NormaliseInPlace(a) }},
		{"Negate",
			func(a, _ Vector) (Vector, error) { return Negate(a), nil },
			func(a, _ Vector) (Vector, error) { return NegateInPlace(a), nil }},
		{"Abs",
			func(a, _ Vector) (Vector, error) { return Abs(a), nil },
			func(a, _ Vector) (Vector, error) { return AbsInPlace(a), nil }},
		{"Fill",
			func(a, _ Vector) (Vector, error) { return Fill(a, 2), nil },
			func(a, _ Vector) (Vector, error) { return FillInPlace(a, 2), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Of(a...)
			got, err := tt.pure(src, Of(b...))
			require.NoError(t, err)

			want, err := tt.inPlace(Clone(src), Of(b...))
			require.NoError(t, err)

			testutil.RequireSliceEqual(t, ToSlice(got), ToSlice(want))
			testutil.RequireSliceEqual(t, src.Data(), a)
		})
	}

	t.Run("CrossProduct", func(t *testing.T) {
		x, y := Of(a[:3]...), Of(b[:3]...)
		got, err := CrossProduct(x, y)
		require.NoError(t, err)
		want, err := CrossProductInPlace(Clone(x), y)
		require.NoError(t, err)
		testutil.RequireSliceEqual(t, ToSlice(got), ToSlice(want))
		testutil.RequireSliceEqual(t, x.Data(), a[:3])
	})
}

func TestPureResultDoesNotAlias(t *testing.T) {
	parent := Of(1, 2, 3, 4)
	view, err := Subvector(parent, 0, 2)
	require.NoError(t, err)

	sum, err := Add(view, Of(1, 1))
	require.NoError(t, err)
	sum.SetAt(0, 100)

	assert.Equal(t, []float64{1, 2, 3, 4}, parent.Data())
}
