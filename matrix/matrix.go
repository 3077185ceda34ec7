// SPDX-License-Identifier: MIT

// Package matrix defines the read-only Matrix interface used by binary operations.
//
// What & Why:
//
//	Binary kernels (Add, Multiply, ElementProduct, ...) accept any Matrix as
//	the second operand. A *Dense operand unlocks the flat-slice fast path;
//	any other implementation is read through At in fixed i→j order, so
//	foreign storage (e.g., a gonum adapter) can participate without a copy.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() performs bounds checking in O(1) time, returning an error on invalid indices.
package matrix

// Matrix is a two-dimensional array of float64 values with bounds-checked reads.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or an error wrapping ErrOutOfRange.
	At(i, j int) (float64, error)
}
