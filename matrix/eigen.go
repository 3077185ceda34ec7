// SPDX-License-Identifier: MIT
// Package matrix - symmetric eigendecomposition by cyclic Jacobi sweeps.
//
// Purpose:
//   - Characteristics returns the positive eigenvalues of a symmetric matrix
//     with their eigenvectors, ascending by value.
//
// Determinism:
//   - Fixed p<q sweep order; products feeding a sum are rounded explicitly
//     (float64(x*y)) so no platform fuses them, and counts of surviving
//     pairs reproduce bit for bit.
//
// Notes:
//   - Eigenvalues <= 0 are dropped. For an indefinite matrix the returned
//     values do not add up to the trace.
//   - Running out of sweeps is not an error: the current estimate is returned.

package matrix

import (
	"math"
	"sort"

	"github.com/katalvlaran/linalg/vector"
)

// Eigenpair is an eigenvalue with its eigenvector (a column of the
// accumulated rotation matrix, unit length up to rounding).
type Eigenpair struct {
	value float64
	vec   *vector.Vector
}

// Value returns the eigenvalue.
func (e Eigenpair) Value() float64 { return e.value }

// Vector returns a copy of the eigenvector.
func (e Eigenpair) Vector() *vector.Vector { return e.vec.Clone() }

// rotate applies one Jacobi plane rotation to the element pair
// (i,j),(k,l) of the n-column row-major buffer a.
func rotate(a []float64, n int, s, tau float64, i, j, k, l int) {
	g := a[i*n+j]
	h := a[k*n+l]
	a[i*n+j] = g - float64(s*(h+float64(g*tau)))
	a[k*n+l] = h + float64(s*(g-float64(h*tau)))
}

// jacobi is the working state of one Characteristics call.
type jacobi struct {
	n       int
	a       []float64 // working copy; only the strict upper triangle is rotated
	v       []float64 // accumulated rotations, starts as identity
	d, b, z []float64 // current diagonal, diagonal at sweep start, sweep increments
	o       Options
}

func newJacobi(m *Dense, o Options) *jacobi {
	n := m.r
	j := &jacobi{
		n: n,
		a: make([]float64, n*n),
		v: make([]float64, n*n),
		d: make([]float64, n),
		b: make([]float64, n),
		z: make([]float64, n),
		o: o,
	}
	copy(j.a, m.data)
	for i := 0; i < n; i++ {
		j.v[i*n+i] = 1.0
		j.d[i] = j.a[i*n+i]
		j.b[i] = j.d[i]
	}

	return j
}

// offSum returns Σ|a[p][q]| over the strict upper triangle.
func (j *jacobi) offSum() float64 {
	sm := ZeroSum
	for p := 0; p < j.n-1; p++ {
		for q := p + 1; q < j.n; q++ {
			sm += math.Abs(j.a[p*j.n+q])
		}
	}

	return sm
}

// sweep visits every p<q pair once. It reports false when the matrix is
// already diagonal.
func (j *jacobi) sweep(iter int) bool {
	n := j.n
	sm := j.offSum()
	if sm == 0.0 {
		return false
	}
	threshold := 0.0
	if iter <= j.o.warmupSweeps {
		threshold = warmupThresholdFactor * sm / float64(n*n)
	}
	eps := j.o.negligibleEps
	skipAfter := j.o.warmupSweeps + 1

	var p, q int
	var apq, g float64
	for p = 0; p < n-1; p++ {
		for q = p + 1; q < n; q++ {
			apq = j.a[p*n+q]
			g = negligibleScale * math.Abs(apq)
			if iter > skipAfter && g <= eps*math.Abs(j.d[p]) && g <= eps*math.Abs(j.d[q]) {
				j.a[p*n+q] = 0.0
				continue
			}
			if math.Abs(apq) > threshold {
				j.rotatePair(p, q, g)
			}
		}
	}
	for p = 0; p < n; p++ {
		j.b[p] += j.z[p]
		j.d[p] = j.b[p]
		j.z[p] = 0.0
	}

	return true
}

// rotatePair zeroes a[p][q] with one rotation and updates d, z and v.
func (j *jacobi) rotatePair(p, q int, g float64) {
	n := j.n
	apq := j.a[p*n+q]
	h := j.d[q] - j.d[p]
	var t float64
	if g <= j.o.negligibleEps*math.Abs(h) {
		t = apq / h
	} else {
		theta := 0.5 * h / apq
		t = 1.0 / (math.Abs(theta) + math.Sqrt(1.0+float64(theta*theta)))
		if theta < 0.0 {
			t = -t
		}
	}
	c := 1.0 / math.Sqrt(1.0+float64(t*t))
	s := t * c
	tau := s / (1.0 + c)
	h = t * apq
	j.z[p] -= h
	j.z[q] += h
	j.d[p] -= h
	j.d[q] += h
	j.a[p*n+q] = 0.0

	var r int
	for r = 0; r < p; r++ {
		rotate(j.a, n, s, tau, r, p, r, q)
	}
	for r = p + 1; r < q; r++ {
		rotate(j.a, n, s, tau, p, r, r, q)
	}
	for r = q + 1; r < n; r++ {
		rotate(j.a, n, s, tau, p, r, q, r)
	}
	for r = 0; r < n; r++ {
		rotate(j.v, n, s, tau, r, p, r, q)
	}
}

// pairs collects (d[i], column i of v) for d[i] > 0, ascending by value.
// Equal values keep column order.
func (j *jacobi) pairs() []Eigenpair {
	n := j.n
	out := make([]Eigenpair, 0, n)
	for i := 0; i < n; i++ {
		if !(j.d[i] > 0) {
			continue
		}
		col := make([]float64, n)
		for r := 0; r < n; r++ {
			col[r] = j.v[r*n+i]
		}
		out = append(out, Eigenpair{value: j.d[i], vec: vector.NewFrom(col)})
	}
	sort.SliceStable(out, func(x, y int) bool { return out[x].value < out[y].value })

	return out
}

// Characteristics computes the eigenpairs of a symmetric matrix by cyclic
// Jacobi rotation and returns those with a positive eigenvalue, sorted
// ascending (stable for ties).
//
// Implementation:
//   - Stage 1: copy M, start V = I, d = b = diag(M), z = 0.
//   - Stage 2: up to maxSweeps sweeps; stop early when the strict upper
//     triangle sums to exactly 0. During the first warmupSweeps sweeps only
//     entries above 0.2·sm/n² are rotated. After sweep warmupSweeps+1,
//     entries with 100·|a[p][q]| below eps·|d[p]| and eps·|d[q]| are zeroed
//     without rotation.
//   - Stage 3: keep d[i] > 0 with column i of V.
//
// Behavior highlights:
//   - Only the upper triangle of M is read off the diagonal; symmetry is not
//     checked (see IsSymmetric).
//   - M is not modified.
//
// Options:
//   - WithMaxSweeps, WithWarmupSweeps, WithNegligibleEpsilon. Defaults: 50, 3, 1e-18.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(sweeps·n^3), Space O(n^2).
//
// AI-Hints:
//   - Compare against trace only for positive semi-definite input.
//   - A tiny positive value can survive where the exact eigenvalue is 0
//     (the 3×3 ones matrix yields 2 pairs, not 1).
func (m *Dense) Characteristics(opts ...Option) ([]Eigenpair, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	j := newJacobi(m, gatherOptions(opts...))
	for iter := 1; iter <= j.o.maxSweeps; iter++ {
		if !j.sweep(iter) {
			break
		}
	}

	return j.pairs(), nil
}
