// SPDX-License-Identifier: MIT
// Package matrix provides products and reductions on Dense:
// matrix×matrix, matrix×vector in both orientations, the Hadamard product,
// row/column/total sums, trace, transpose and the exact symmetry check.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Keep every accumulation a plain left-to-right sum (no compensation):
//     error grows linearly with the number of terms, and tests compare large
//     results with explicit tolerances.
//
// Notes:
//   - Zero entries are never skipped: 0·Inf must still produce NaN.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ZeroSum is the initial value of every accumulator in this package.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSubtract    = "Subtract"
	opSum         = "Sum"
	opDifference  = "Difference"
	opAddToRow    = "AddToRow"
	opMulVecLeft  = "MultiplyVectorFromLeft"
	opMulVecRight = "MultiplyVectorFromRight"
	opMultiply    = "Multiply"
	opElemProduct = "ElementProduct"
	opColumnSum   = "ColumnSum"
	opRowSum      = "RowSum"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opCholesky    = "Cholesky"
	opEigen       = "Characteristics"
	opFromGonum   = "FromGonum"
	opToGonum     = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyVectorFromLeft treats v as a row vector and returns vᵀ·M.
// result[i] = Σ_j v[j]*M[j][i], length Cols(); requires v.Size() == Rows().
//
// Errors:
//   - ErrDimensionMismatch (nil v or wrong length).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func (m *Dense) MultiplyVectorFromLeft(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opMulVecLeft, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(v.Size(), m.r); err != nil {
		return nil, matrixErrorf(opMulVecLeft, err)
	}
	x := v.Values()
	out := make([]float64, m.c)
	var i, j int
	var acc float64
	for i = 0; i < m.c; i++ {
		acc = ZeroSum
		for j = 0; j < m.r; j++ {
			acc += x[j] * m.data[j*m.c+i]
		}
		out[i] = acc
	}

	return vector.NewFrom(out), nil
}

// MultiplyVectorFromRight treats v as a column vector and returns M·v.
// result[i] = Σ_j v[j]*M[i][j], length Rows(); requires v.Size() == Cols().
//
// Errors:
//   - ErrDimensionMismatch (nil v or wrong length).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense) MultiplyVectorFromRight(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opMulVecRight, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(v.Size(), m.c); err != nil {
		return nil, matrixErrorf(opMulVecRight, err)
	}
	x := v.Values()
	out := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += x[j] * m.data[base+j]
		}
		out[i] = acc
	}

	return vector.NewFrom(out), nil
}

// Multiply performs standard matrix multiplication C = M × other (no aliasing).
// Implementation:
//   - Stage 1: Validate other (not nil) and inner dimensions (M.Cols == other.Rows).
//   - Stage 2: flatten other (no copy for *Dense).
//   - Stage 3: i→k→j over row-major strides; each C[i][j] still accumulates
//     its terms in ascending k.
//
// Behavior highlights:
//   - Operands are never mutated; C inherits M's numeric policy.
//
// Inputs:
//   - other: right matrix with shape (M.Cols × c).
//
// Returns:
//   - *Dense C with shape (M.Rows × other.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep other as *Dense to avoid the staging copy.
func (m *Dense) Multiply(other Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	b, err := flatten(other)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	aRows, aCols, bCols := m.r, m.c, other.Cols()
	res := newDenseLike(m, aRows, bCols)

	var i, j, k int
	var rowA, rowB, rowR int
	var av float64
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowA+k]
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b[rowB+j]
			}
		}
	}

	return res, nil
}

// ElementProduct returns the Hadamard product M ⊙ other as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) ElementProduct(other Matrix) (*Dense, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opElemProduct, err)
	}
	b, err := flatten(other)
	if err != nil {
		return nil, matrixErrorf(opElemProduct, err)
	}
	res := newDenseLike(m, m.r, m.c)
	for idx := range m.data {
		res.data[idx] = m.data[idx] * b[idx]
	}

	return res, nil
}

// ColumnSum returns Σ_i M[i][c].
func (m *Dense) ColumnSum(c int) (float64, error) {
	if c < 0 || c >= m.c {
		return 0, matrixErrorf(opColumnSum, denseErrorf(ctxColumn, 0, c, ErrOutOfRange))
	}

	return m.columnSum(c), nil
}

// columnSum is ColumnSum without the bounds check.
func (m *Dense) columnSum(c int) float64 {
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+c]
	}

	return sum
}

// RowSum returns Σ_j M[r][j].
func (m *Dense) RowSum(r int) (float64, error) {
	if r < 0 || r >= m.r {
		return 0, matrixErrorf(opRowSum, denseErrorf(ctxRow, r, 0, ErrOutOfRange))
	}
	sum := ZeroSum
	base := r * m.c
	for j := 0; j < m.c; j++ {
		sum += m.data[base+j]
	}

	return sum, nil
}

// SumOfRows adds all rows together: the result has length Cols() and
// element j equals ColumnSum(j).
func (m *Dense) SumOfRows() *vector.Vector {
	out := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = m.columnSum(j)
	}

	return vector.NewFrom(out)
}

// SumOfElements returns the row-major left-to-right sum of every entry.
func (m *Dense) SumOfElements() float64 {
	sum := ZeroSum
	for _, v := range m.data {
		sum += v
	}

	return sum
}

// Trace returns Σ_i M[i][i]. Errors: ErrNonSquare.
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Transpose returns a new Cols()×Rows() matrix with rows and columns swapped.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	res := newDenseLike(m, m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// IsSymmetric reports whether M[i][j] == M[j][i] for every i < j, using
// exact equality. Non-square matrices are never symmetric. A NaN anywhere
// off the diagonal makes the matrix non-symmetric.
//
// AI-Hints:
//   - Call before Cholesky or Characteristics; neither checks symmetry itself.
func (m *Dense) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	n := m.r
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}
