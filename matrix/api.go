// SPDX-License-Identifier: MIT
// Package matrix — constructors and shape-derived facades.
//
// Purpose:
//   - Provide the three canonical constructors besides NewDense: identity,
//     uniformly random, and from a rectangular literal.
//   - Keep names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Pass a seeded *rand.Rand to NewRandom for reproducible fixtures.
//   - NewDenseFrom is the shortest path from a test table to a *Dense.

package matrix

import "fmt"

// Float64Source is the subset of *math/rand.Rand (and math/rand/v2) used by NewRandom.
type Float64Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for Multiply and as the seed of Inverse.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewRandom returns a rows×cols matrix with entries lo + (hi-lo)*rng.Float64(),
// drawn in row-major order so a seeded source yields the same matrix every run.
// Errors: ErrInvalidDimensions, ErrNilSource.
func NewRandom(rows, cols int, lo, hi float64, rng Float64Source, opts ...Option) (*Dense, error) {
	if rng == nil {
		return nil, fmt.Errorf("NewRandom: %w", ErrNilSource)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	span := hi - lo
	for idx := range m.data { // row-major draw order
		m.data[idx] = lo + span*rng.Float64()
	}

	return m, nil
}

// NewDenseFrom copies a rectangular literal into a new Dense.
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrBadShape when any row length differs from the first.
//   - ErrNaNInf when WithValidateNaNInf(true) is set and a value is not finite.
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFrom: %w", err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewDenseFrom: %w", err)
			}
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Complexity: O(rc).
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseLike(m, m.r, m.c), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
//
// AI-Hints: Handy as the right-hand side when verifying m·m⁻¹ ≈ I.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	I := newDenseLike(m, m.r, m.c)
	for i := 0; i < m.r; i++ {
		I.data[i*m.c+i] = 1.0
	}

	return I, nil
}
