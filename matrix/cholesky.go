// SPDX-License-Identifier: MIT

package matrix

import "math"

// Cholesky returns the lower-triangular factor L with L·Lᵀ = M for a
// symmetric positive-definite M. M is not modified.
//
// For each i and every j ≥ i:
//
//	sum     = M[i][j] - Σ_{k<i} L[i][k]·L[j][k]
//	L[i][i] = sqrt(sum)         (j == i)
//	L[j][i] = sum / L[i][i]     (j > i)
//
// Only the upper triangle of M is read; symmetry is the caller's
// responsibility (see IsSymmetric). A non-positive pivot sum is not trapped:
// sqrt of a negative number is NaN, a zero pivot gives ±Inf, and both
// propagate into the rest of L.
//
// Errors: ErrNonSquare.
// Complexity: Time O(n^3), Space O(n^2).
func (m *Dense) Cholesky() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := m.r
	L := newDenseLike(m, n, n)
	l := L.data

	var i, j, k, rowI, rowJ int
	var sum float64
	for i = 0; i < n; i++ {
		rowI = i * n
		for j = i; j < n; j++ {
			rowJ = j * n
			sum = m.data[rowI+j]
			for k = i - 1; k >= 0; k-- {
				sum -= float64(l[rowI+k] * l[rowJ+k])
			}
			if i == j {
				l[rowI+i] = math.Sqrt(sum)
			} else {
				l[rowJ+i] = sum / l[rowI+i]
			}
		}
	}

	return L, nil
}
