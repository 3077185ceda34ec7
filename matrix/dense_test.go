// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseDefaultZero checks the zero fill and the reported shape.
func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Equal(t, 0.0, m.SumOfElements())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds) // deprecated alias
	require.ErrorIs(t, m.AddAt(5, 5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Increment(0, 9), matrix.ErrOutOfRange)
}

// TestSetGetAddAtIncrement validates the mutating accessors on valid indices.
func TestSetGetAddAtIncrement(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.5))
	require.Equal(t, 7.5, MustAt(t, m, 1, 2))

	require.NoError(t, m.AddAt(1, 2, 0.5))
	require.Equal(t, 8.0, MustAt(t, m, 1, 2))

	require.NoError(t, m.Increment(0, 0))
	require.NoError(t, m.Increment(0, 0))
	require.Equal(t, 2.0, MustAt(t, m, 0, 0))
}

// TestNaNInfPolicy checks that the numeric guard rejects non-finite writes
// and leaves the cell untouched.
func TestNaNInfPolicy(t *testing.T) {
	guarded, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf(true))
	require.NoError(t, err)

	require.ErrorIs(t, guarded.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, guarded.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, guarded.Set(1, 1, math.MaxFloat64))
	require.ErrorIs(t, guarded.AddAt(1, 1, math.MaxFloat64), matrix.ErrNaNInf)
	require.Equal(t, math.MaxFloat64, MustAt(t, guarded, 1, 1))

	// Clone keeps the policy.
	require.ErrorIs(t, guarded.Clone().Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// Default policy accepts NaN.
	open := MustDense(t, 1, 1)
	require.NoError(t, open.Set(0, 0, math.NaN()))
	require.True(t, math.IsNaN(MustAt(t, open, 0, 0)))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestRowColumn(t *testing.T) {
	m := MustFrom(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row.Values())

	// The row is a copy.
	require.NoError(t, row.Set(0, 100))
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestPartial(t *testing.T) {
	m := MustFrom(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	sub, err := m.Partial(1, 2, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 3, sub.Cols())
	requireAllClose(t, MustFrom(t, [][]float64{{6, 7, 8}, {10, 11, 12}}), sub, 0)

	// Single cell window.
	one, err := m.Partial(0, 0, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 4.0, MustAt(t, one, 0, 0))

	// Independent storage.
	require.NoError(t, sub.Set(0, 0, -1))
	require.Equal(t, 6.0, MustAt(t, m, 1, 1))

	_, err = m.Partial(0, 3, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Partial(-1, 0, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Partial(2, 1, 0, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestString(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
