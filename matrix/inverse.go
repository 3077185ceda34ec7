// SPDX-License-Identifier: MIT
// Package matrix - in-place inversion by Gauss-Jordan elimination with full pivoting.
//
// Purpose:
//   - Replace M with M⁻¹ while carrying a companion identity B through the
//     same row operations.
//   - Keep all elimination state (both buffers, pivot bookkeeping) inside one
//     call-scoped gaussJordan value; nothing outlives Inverse.
//
// Notes:
//   - There is no singularity check. A zero pivot divides by zero and the
//     resulting ±Inf/NaN spread through the result; callers must treat a
//     non-finite entry as failure.

package matrix

import "math"

// gaussJordan holds the working buffers and pivot records of one inversion.
type gaussJordan struct {
	n     int
	a     []float64 // the matrix being inverted, row-major, aliased to the receiver
	b     []float64 // companion identity
	used  []int     // pivot count per column; 0 means still available
	pivR  []int     // row where pivot step s was found
	pivC  []int     // column of pivot step s
	steps int
}

func newGaussJordan(m *Dense) *gaussJordan {
	n := m.r
	b := make([]float64, n*n)
	for i := 0; i < n; i++ {
		b[i*n+i] = 1.0
	}

	return &gaussJordan{
		n:    n,
		a:    m.data,
		b:    b,
		used: make([]int, n),
		pivR: make([]int, n),
		pivC: make([]int, n),
	}
}

// findPivot returns the largest |a[r][c]| over unused rows and columns.
// Ties keep the last candidate in i→j scan order. When every candidate is
// NaN the first unused column is taken as a diagonal pivot, which keeps the
// NaN flowing instead of indexing out of range.
func (g *gaussJordan) findPivot() (row, col int) {
	row, col = -1, -1
	big := 0.0
	var j, k int
	var v float64
	for j = 0; j < g.n; j++ {
		if g.used[j] == 1 {
			continue
		}
		for k = 0; k < g.n; k++ {
			if g.used[k] != 0 {
				continue
			}
			v = math.Abs(g.a[j*g.n+k])
			if v >= big {
				big, row, col = v, j, k
			}
		}
	}
	if col < 0 {
		for k = 0; k < g.n; k++ {
			if g.used[k] == 0 {
				return k, k
			}
		}
	}

	return row, col
}

// swapRows exchanges rows r1 and r2 in both a and b.
func (g *gaussJordan) swapRows(r1, r2 int) {
	o1, o2 := r1*g.n, r2*g.n
	for l := 0; l < g.n; l++ {
		g.a[o1+l], g.a[o2+l] = g.a[o2+l], g.a[o1+l]
	}
	for l := 0; l < g.n; l++ {
		g.b[o1+l], g.b[o2+l] = g.b[o2+l], g.b[o1+l]
	}
}

// step performs one pivot: search, move the pivot onto the diagonal, scale
// the pivot row, clear the pivot column elsewhere.
func (g *gaussJordan) step() {
	n := g.n
	irow, icol := g.findPivot()
	g.used[icol]++
	if irow != icol {
		g.swapRows(irow, icol)
	}
	g.pivR[g.steps] = irow
	g.pivC[g.steps] = icol
	g.steps++

	pr := icol * n
	pivinv := 1.0 / g.a[pr+icol]
	g.a[pr+icol] = 1.0
	var l, ll int
	for l = 0; l < n; l++ {
		g.a[pr+l] *= pivinv
	}
	for l = 0; l < n; l++ {
		g.b[pr+l] *= pivinv
	}

	var base int
	var dum float64
	for ll = 0; ll < n; ll++ {
		if ll == icol {
			continue
		}
		base = ll * n
		dum = g.a[base+icol]
		g.a[base+icol] = 0.0
		for l = 0; l < n; l++ {
			g.a[base+l] -= float64(g.a[pr+l] * dum)
		}
		for l = 0; l < n; l++ {
			g.b[base+l] -= float64(g.b[pr+l] * dum)
		}
	}
}

// unscramble undoes the column interchanges implied by the row swaps,
// last pivot first.
func (g *gaussJordan) unscramble() {
	n := g.n
	var l, k, cr, cc int
	for l = g.steps - 1; l >= 0; l-- {
		cr, cc = g.pivR[l], g.pivC[l]
		if cr == cc {
			continue
		}
		for k = 0; k < n; k++ {
			g.a[k*n+cr], g.a[k*n+cc] = g.a[k*n+cc], g.a[k*n+cr]
		}
	}
}

// Inverse replaces M with its inverse.
//
// Implementation:
//   - n pivot steps; each picks the largest remaining |entry| over rows and
//     columns not yet pivoted (full pivoting), swaps it onto the diagonal in
//     both M and B, scales the pivot row to 1 and eliminates the pivot column
//     from every other row.
//   - Recorded swaps are undone on the columns in reverse order.
//
// Behavior highlights:
//   - Shape is validated before the first write; on ErrNonSquare M is intact.
//   - Singular input is not detected: the result contains ±Inf/NaN.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for B plus O(n) bookkeeping.
//
// AI-Hints:
//   - Clone first if the original values are still needed.
//   - Check the result with math.IsNaN/IsInf before trusting it.
func (m *Dense) Inverse() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opInverse, err)
	}
	g := newGaussJordan(m)
	for s := 0; s < g.n; s++ {
		g.step()
	}
	g.unscramble()

	return nil
}
