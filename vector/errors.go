// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrOutOfRange indicates an index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidSize indicates a negative requested length.
	ErrInvalidSize = errors.New("vector: size must be >= 0")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)
