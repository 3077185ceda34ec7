package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestNew_FillAndSize checks fill values and the negative-size guard.
func TestNew_FillAndSize(t *testing.T) {
	v, err := vector.New(4, 2.5)
	require.NoError(t, err)
	require.Equal(t, 4, v.Size())
	assert.Equal(t, 10.0, v.SumOfElements())

	empty, err := vector.New(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())

	_, err = vector.New(-1, 0)
	assert.ErrorIs(t, err, vector.ErrInvalidSize)
}

// TestNewFrom_Copies ensures the constructor does not alias its input.
func TestNewFrom_Copies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := vector.NewFrom(src)
	src[0] = 100

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "vector must own its storage")

	out := v.Values()
	out[1] = 100
	x, _ = v.At(1)
	assert.Equal(t, 2.0, x, "Values must return a copy")
}

// TestAtSet_Bounds verifies indexed access and out-of-range errors.
func TestAtSet_Bounds(t *testing.T) {
	v := vector.NewFrom([]float64{0, 0})

	require.NoError(t, v.Set(1, 7))
	require.NoError(t, v.AddAt(1, 1))
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, x)

	_, err = v.At(2)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(-1, 0), vector.ErrOutOfRange)
	assert.ErrorIs(t, v.AddAt(5, 0), vector.ErrOutOfRange)
}

// TestArithmetic covers Add, Subtract, Difference, Dot, Scale and Product.
func TestArithmetic(t *testing.T) {
	a := vector.NewFrom([]float64{1, 2, 3})
	b := vector.NewFrom([]float64{4, 5, 6})

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	d, err := b.Difference(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, d.Values())

	require.NoError(t, a.Add(b))
	assert.Equal(t, []float64{5, 7, 9}, a.Values())
	require.NoError(t, a.Subtract(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Values())

	p := a.Product(-2)
	assert.Equal(t, []float64{-2, -4, -6}, p.Values())
	assert.Equal(t, []float64{1, 2, 3}, a.Values(), "Product must not mutate the receiver")

	a.Scale(0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5}, a.Values())
}

// TestDimensionMismatch ensures binary operations reject unequal lengths and nil.
func TestDimensionMismatch(t *testing.T) {
	a := vector.NewFrom([]float64{1, 2})
	b := vector.NewFrom([]float64{1, 2, 3})

	assert.ErrorIs(t, a.Add(b), vector.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Subtract(b), vector.ErrDimensionMismatch)
	_, err := a.Dot(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Difference(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Add(nil), vector.ErrNilVector)

	assert.Equal(t, []float64{1, 2}, a.Values(), "failed ops must not mutate")
}

// TestL2Norm checks the Euclidean norm on a 3-4-5 triangle.
func TestL2Norm(t *testing.T) {
	v := vector.NewFrom([]float64{3, 4})
	assert.Equal(t, 5.0, v.L2Norm())

	zero, _ := vector.New(3, 0)
	assert.Equal(t, 0.0, zero.L2Norm())
	assert.False(t, math.IsNaN(zero.L2Norm()))
}

// TestString checks the diagnostic format.
func TestString(t *testing.T) {
	v := vector.NewFrom([]float64{1, 2.5})
	assert.Equal(t, "[1, 2.5]", v.String())
}

// TestMatchesGonumFloats cross-checks the reductions against gonum/floats.
func TestMatchesGonumFloats(t *testing.T) {
	xs := []float64{0.5, -1.25, 3, 7.75, -2, 1e-3}
	ys := []float64{2, 4, -0.5, 1, 3.5, 1e3}
	a, b := vector.NewFrom(xs), vector.NewFrom(ys)

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.InDelta(t, floats.Dot(xs, ys), dot, 1e-12)
	assert.InDelta(t, floats.Norm(xs, 2), a.L2Norm(), 1e-12)
	assert.InDelta(t, floats.Sum(xs), a.SumOfElements(), 1e-12)

	diff, err := a.Difference(b)
	require.NoError(t, err)
	want := make([]float64, len(xs))
	floats.SubTo(want, xs, ys)
	assert.Equal(t, want, diff.Values())
}
