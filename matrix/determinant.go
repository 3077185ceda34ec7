// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(M) by forward elimination on a private copy.
//
// Implementation:
//   - Pivot i multiplies the running product by copy[i][i]; an exact 0.0
//     product stops the elimination and is returned as is.
//   - Rows below the pivot subtract ratio·row_i, ratio = copy[j][i]/copy[i][i].
//
// Behavior highlights:
//   - No row exchanges. A zero pivot ends the loop with 0 even when the
//     matrix is regular ([[0,1],[1,0]] reports 0, not -1); tiny pivots
//     lose accuracy.
//   - M is never mutated.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.r
	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	var i, j, k, rowI, rowJ int
	var ratio float64
	for i = 0; i < n; i++ {
		rowI = i * n
		det *= a[rowI+i]
		if det == 0.0 {
			break
		}
		for j = i + 1; j < n; j++ {
			rowJ = j * n
			ratio = a[rowJ+i] / a[rowI+i]
			for k = i; k < n; k++ {
				a[rowJ+k] -= float64(a[rowI+k] * ratio)
			}
		}
	}

	return det, nil
}
