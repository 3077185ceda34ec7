// Package matrix_test contains tests for the shared shape validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustDense(t, 1, 1)}))
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 4, 1)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen(4, 4))
	err := matrix.ValidateVecLen(3, 4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "len 3, want 4")
}
