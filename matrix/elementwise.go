// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise layer: scalar scale/divide, row normalization, in-place and
//     pure add/subtract, vector-into-row accumulation.
//
// Design:
//   - Every binary method validates shapes before the first write, so a
//     failed call leaves the receiver untouched.
//   - The second operand is any Matrix; flatten() hands back a row-major view
//     (the backing slice itself for *Dense, a staged copy otherwise).
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 over the row-major buffer.
//   - No checks on produced values: NaN/±Inf propagate.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// flatten returns m's elements in row-major order.
// For *Dense the backing slice is returned without copying; callers must not
// write through it. Other implementations are read via At in fixed i→j order.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// Scale multiplies every entry by k in place.
// Complexity: O(r*c).
func (m *Dense) Scale(k float64) {
	for idx := range m.data {
		m.data[idx] *= k
	}
}

// Divide divides every entry by k in place. k == 0 yields ±Inf/NaN entries.
func (m *Dense) Divide(k float64) {
	for idx := range m.data {
		m.data[idx] /= k
	}
}

// ColumnWiseNormalize divides each ROW by its own row sum, in place.
// The name is historical: normalization is row-wise, so afterwards every
// row sums to 1. A zero row sum produces ±Inf/NaN in that row and is not
// trapped.
//
// Complexity: O(r*c), two passes per row.
func (m *Dense) ColumnWiseNormalize() {
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = 0.0
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j]
		}
		for j = 0; j < m.c; j++ {
			m.data[base+j] /= sum
		}
	}
}

// addSubInPlace performs m += sign*other after full validation.
func (m *Dense) addSubInPlace(other Matrix, sign float64, opTag string) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opTag, err)
	}
	src, err := flatten(other)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * src[idx]
	}

	return nil
}

// Add performs m += other in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch (receiver unchanged).
func (m *Dense) Add(other Matrix) error { return m.addSubInPlace(other, +1, opAdd) }

// Subtract performs m -= other in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch (receiver unchanged).
func (m *Dense) Subtract(other Matrix) error { return m.addSubInPlace(other, -1, opSubtract) }

// addSub computes a fresh result = m + sign*other; operands are not mutated.
func (m *Dense) addSub(other Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := flatten(other)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseLike(m, m.r, m.c)
	for idx := range m.data {
		res.data[idx] = m.data[idx] + sign*src[idx]
	}

	return res, nil
}

// Sum returns m + other as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Sum(other Matrix) (*Dense, error) { return m.addSub(other, +1, opSum) }

// Difference returns m - other as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Difference(other Matrix) (*Dense, error) { return m.addSub(other, -1, opDifference) }

// AddToRow adds v elementwise into row `row`.
// Errors:
//   - ErrOutOfRange when row is outside [0, Rows()).
//   - ErrDimensionMismatch when v is nil or v.Size() != Cols().
func (m *Dense) AddToRow(row int, v *vector.Vector) error {
	if row < 0 || row >= m.r {
		return matrixErrorf(opAddToRow, denseErrorf(ctxRow, row, 0, ErrOutOfRange))
	}
	if v == nil {
		return matrixErrorf(opAddToRow, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(v.Size(), m.c); err != nil {
		return matrixErrorf(opAddToRow, err)
	}
	base := row * m.c
	for j, x := range v.Values() {
		m.data[base+j] += x
	}

	return nil
}
