// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf on ingestion).
//
// AI-Hints:
//   - Kernels in this package operate on the flat data slice directly.
//   - Use Partial(r0,r1,c0,c1) to materialize an independent submatrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Partial: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxAddAt     = "AddAt"     // method tag used in error wrappers
	ctxIncrement = "Increment" // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxColumn    = "Column"    // method tag used in error wrappers
	ctxPartial   = "Partial"   // ctor tag for Dense.Partial
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel is kept via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 and immutable.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/AddAt.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on ingestion when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - 0×N and N×0 shapes are rejected: every Dense holds at least one element.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: WithValidateNaNInf is honored; solver options are ignored.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseLike allocates a zero matrix that inherits m's numeric policy.
// Shapes come from an existing Dense, so they are known to be valid.
func newDenseLike(m *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns a bare ErrOutOfRange; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// checkFinite enforces the numeric policy for a value about to be stored.
func (m *Dense) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Returns ErrOutOfRange for bad indices and ErrNaNInf when the policy is
// enabled and v is not finite. Nothing is written on error.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AddAt accumulates v into (row, col). The policy applies to the new value.
func (m *Dense) AddAt(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	nv := m.data[off] + v
	if err = m.checkFinite(nv); err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	m.data[off] = nv

	return nil
}

// Increment adds 1 to (row, col); handy for count tables.
func (m *Dense) Increment(row, col int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxIncrement, row, col, err)
	}
	nv := m.data[off] + 1
	if err = m.checkFinite(nv); err != nil {
		return denseErrorf(ctxIncrement, row, col, err)
	}
	m.data[off] = nv

	return nil
}

// Row returns a copy of row r as a vector of length Cols().
func (m *Dense) Row(r int) (*vector.Vector, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	base := r * m.c

	return vector.NewFrom(m.data[base : base+m.c]), nil
}

// Column returns a copy of column c as a slice of length Rows().
func (m *Dense) Column(c int) ([]float64, error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf(ctxColumn, 0, c, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Partial copies the inclusive window [rowStart..rowEnd]×[colStart..colEnd]
// into a new Dense of shape (rowEnd-rowStart+1)×(colEnd-colStart+1).
//
// Errors:
//   - ErrOutOfRange when any bound lies outside the matrix.
//   - ErrBadShape when an end precedes its start.
func (m *Dense) Partial(rowStart, rowEnd, colStart, colEnd int) (*Dense, error) {
	if rowStart < 0 || rowEnd >= m.r || colStart < 0 || colEnd >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d..%d,%d..%d): %w", ctxPartial, rowStart, rowEnd, colStart, colEnd, ErrOutOfRange)
	}
	if rowEnd < rowStart || colEnd < colStart {
		return nil, fmt.Errorf("Dense.%s(%d..%d,%d..%d): %w", ctxPartial, rowStart, rowEnd, colStart, colEnd, ErrBadShape)
	}
	rows, cols := rowEnd-rowStart+1, colEnd-colStart+1
	res := newDenseLike(m, rows, cols)
	for i := 0; i < rows; i++ {
		src := (rowStart+i)*m.c + colStart
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// String renders matrix rows as lines with comma-separated %g values.
// Intended for debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
