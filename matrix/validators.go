// SPDX-License-Identifier: MIT

// Package matrix - central validators.
//
// Purpose:
//   - One place for shape contracts so every kernel reports identical errors.
//   - Validators never mutate and never allocate; they run before any write,
//     which is what lets kernels promise "validate, then act".
//
// AI-Hints:
//   - Wrap the returned error with the operation tag at the call site
//     (matrixErrorf(opX, err)); validators only add their own tag.

package matrix

import "fmt"

// validatorErrorf tags a validation failure while preserving the sentinel.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil interface and a typed-nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires non-nil operands with equal Rows and Cols.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires a non-nil matrix with Rows == Cols.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible requires a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen requires a vector length of exactly n.
// The vector is passed by length so both []float64 and *vector.Vector
// callers share one rule.
func ValidateVecLen(length, n int) error {
	if length != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", length, n, ErrDimensionMismatch))
	}

	return nil
}
