// SPDX-License-Identifier: MIT

// Package matrix - sentinel errors.
//
// Purpose:
//   - Single source of truth for every error the engine can return.
//   - Callers match with errors.Is; wrappers add operation tags and coordinates.
//
// Notes:
//   - Numerical degeneracy (singular input to Inverse, indefinite input to
//     Cholesky, zero pivots in Determinant) is NOT an error. It surfaces as
//     NaN/±Inf in the returned values. There is no ErrSingular.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a literal or window is not rectangular
	// (e.g., ragged rows in NewDenseFrom, inverted bounds in Partial).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, extent).
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g., Add with different shapes or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf written into a matrix whose numeric
	// policy rejects them (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSource indicates that NewRandom received a nil random source.
	ErrNilSource = errors.New("matrix: nil random source")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ErrIndexOutOfBounds is kept for callers written against older releases.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
