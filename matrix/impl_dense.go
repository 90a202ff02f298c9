// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep representation and algebra decoupled: Dense[E] knows nothing about rings,
//     so the same storage serves integers, reals and finite-field elements.
//   - Support copy-based sub-block extraction (Slice) and assembly (Block, see impl_block.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromRows/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxSlice = "Slice" // ctor tag for Slice
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen    = "["
	_fmtRowClose   = "]\n"
	_fmtSep        = ", "
	_latexOpen     = `\begin{pmatrix} `
	_latexClose    = ` \end{pmatrix}`
	_latexColSep   = " & "
	_latexRowBreak = ` \\ `
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of ring elements.
//   - r,c hold dimensions (rows, cols), both > 0 for every Dense built by this package.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Dense is a mutable value: it is safe to share read-only across goroutines,
// but concurrent writes need external synchronization.
type Dense[E any] struct {
	r, c int // row and column counts
	data []E // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c matrix whose entries hold the zero value of E.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the zero-filled buffer.
//
// Behavior highlights:
//   - "Zero value of E" is Go's zero value. Every ring in this module uses it
//     as its additive identity (0, 0.0, gf.Element{}, quadratic.Element{});
//     use Algebra.Zeros for a ring whose Zero() differs.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E any](rows, cols int) (*Dense[E], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}, nil
}

// NewDenseFrom returns a deep copy of any Matrix as a *Dense.
// Complexity: O(r*c).
func NewDenseFrom[E any](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense[E]); ok {
		return d.copyDense(), nil
	}

	// Fallback: generic interface version with fixed i→j order.
	out, err := NewDense[E](m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    E
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// FromRows builds a Dense from a slice of equally long rows (copied).
// Errors: ErrInvalidDimensions for an empty input or empty first row,
// ErrDimensionMismatch for ragged rows.
func FromRows[E any](rows [][]E) (*Dense[E], error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	out, err := NewDense[E](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(out.data[i*cols:(i+1)*cols], row)
	}

	return out, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the zero value of E with the error.
// Complexity: O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; the result never aliases m's storage.
// Complexity: O(r*c).
func (m *Dense[E]) Clone() Matrix[E] {
	return m.copyDense()
}

// copyDense is the typed form of Clone used by kernels that need *Dense.
func (m *Dense[E]) copyDense() *Dense[E] {
	cp := make([]E, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[E]{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as freshly allocated rows (no aliasing).
// Handy for table-driven tests and go-cmp diffs.
func (m *Dense[E]) ToRows() [][]E {
	out := make([][]E, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]E, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// swapRows exchanges rows r1 and r2 in place. Indices are trusted.
func (m *Dense[E]) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// String HUMAN-READABLE dump of rows for diagnostics, one "[a, b, ...]" line per row.
// Elements are rendered with %v, so types implementing fmt.Stringer (gf.Element)
// print in their own notation. Not for hot paths.
func (m *Dense[E]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// LaTeX renders the matrix as a pmatrix environment:
//
//	\begin{pmatrix} 1 & 2 \\ 3 & 4 \end{pmatrix}
func (m *Dense[E]) LaTeX() string {
	var b strings.Builder
	b.WriteString(_latexOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_latexRowBreak)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_latexColSep)
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
	}
	b.WriteString(_latexClose)

	return b.String()
}

// Slice copies the h×w block whose top-left corner is (r0, c0) into a new Dense.
// MAIN DESCRIPTION:
//   - Copy-based sub-block extraction; the inverse of placing a block with Block.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (h<=0 or w<=0),
//     ErrOutOfRange when the window leaves m.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func Slice[E any](m Matrix[E], r0, c0, h, w int) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxSlice, err)
	}
	if h <= 0 || w <= 0 {
		return nil, matrixErrorf(ctxSlice, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+h > m.Rows() || c0+w > m.Cols() {
		return nil, matrixErrorf(ctxSlice, fmt.Errorf("window (%d,%d)+%dx%d: %w", r0, c0, h, w, ErrOutOfRange))
	}

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(ctxSlice, err)
	}
	out, _ := NewDense[E](h, w) // shape already validated
	for i := 0; i < h; i++ {
		base := (r0+i)*src.c + c0
		copy(out.data[i*w:(i+1)*w], src.data[base:base+w])
	}

	return out, nil
}

// asDense returns m itself when it already is a *Dense (fast path, no copy),
// otherwise materializes it through At. Callers must treat the result as
// read-only. A nil m, typed or not, yields ErrNilMatrix.
func asDense[E any](m Matrix[E]) (*Dense[E], error) {
	if d, ok := m.(*Dense[E]); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}
		return d, nil
	}

	return NewDenseFrom(m)
}
