// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (ones, identity, seeded random) and
//     fatal-on-error wrappers around constructors and accessors.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix so that type assertions to *Dense fail, forcing the
// interface fallback path in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds a *Dense from a rectangular literal or fails the test.
func MustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// Ones returns an r×c matrix filled with 1.0.
func Ones(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, 1.0))
		}
	}

	return m
}

// SeededRandom returns an r×c matrix with entries in [lo,hi) from a fixed seed.
func SeededRandom(tb testing.TB, r, c int, lo, hi float64, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, lo, hi, rand.New(rand.NewSource(seed)))
	require.NoError(tb, err)

	return m
}

// hasNonFinite reports whether any entry of m is NaN or ±Inf.
func hasNonFinite(tb testing.TB, m *matrix.Dense) bool {
	tb.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := MustAt(tb, m, i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}

	return false
}

// requireAllClose compares two matrices entrywise within tol.
func requireAllClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(tb, MustAt(tb, want, i, j), MustAt(tb, got, i, j), tol, "at (%d,%d)", i, j)
		}
	}
}
