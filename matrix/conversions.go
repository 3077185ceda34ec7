// SPDX-License-Identifier: MIT
// Package matrix - bridges to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - ToGonum / FromGonum copy values between *Dense and gonum matrices so
//     callers can reach gonum's factorizations (SVD, QR, EigenSym) without
//     giving up this package's numeric contracts.
//   - Gonum adapts any mat.Matrix to the Matrix interface, so gonum values
//     are accepted directly by Add, Sum, Multiply and friends.
//
// Notes:
//   - Conversions always copy; neither side aliases the other's storage.
//   - gonum panics on bad indices, the adapter returns ErrOutOfRange instead.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of m.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any mat.Matrix into a new *Dense.
// Errors: ErrNilMatrix (nil src), ErrInvalidDimensions (empty src),
// ErrNaNInf when WithValidateNaNInf(true) rejects a value.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// gonumMatrix exposes a mat.Matrix through the Matrix interface.
type gonumMatrix struct {
	m    mat.Matrix
	r, c int
}

// Gonum adapts src to Matrix without copying. A nil src yields nil.
func Gonum(src mat.Matrix) Matrix {
	if src == nil {
		return nil
	}
	r, c := src.Dims()

	return &gonumMatrix{m: src, r: r, c: c}
}

func (g *gonumMatrix) Rows() int { return g.r }
func (g *gonumMatrix) Cols() int { return g.c }

func (g *gonumMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		return 0, fmt.Errorf("gonum.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}
