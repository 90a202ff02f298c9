// SPDX-License-Identifier: MIT
// Package matrix provides ring-parameterized operations on any Matrix
// implementation: element-wise addition, subtraction, negation, scaling,
// matrix multiplication, identity construction and Gauss–Jordan inversion.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Bind a ring.Ring[E] once (Algebra[E, R]) and reuse it across kernels.
//   - Keep the ring as a type parameter, not an interface field, so calls to
//     Add/Multiply are statically dispatched for concrete rings.
//
// Notes:
//   - Operands may be any Matrix[E]; *Dense[E] operands are read directly
//     from their flat buffers, other implementations are materialized once.
//   - Results are always fresh *Dense[E]; inputs are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/algebra/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opNegative  = "Negative"
	opScale     = "Scale"
	opMultiply  = "Multiply"
	opMatVec    = "MatVec"
	opIdentity  = "Identity"
	opZeros     = "Zeros"
	opInverse   = "Inverse"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Algebra performs linear algebra over matrices whose entries live in the
// ring R. It holds no mutable state and is safe for concurrent use whenever
// the ring itself is.
type Algebra[E comparable, R ring.Ring[E]] struct {
	r R
}

// NewAlgebra binds r for all subsequent operations.
// The element type usually has to be spelled out, the ring type is inferred:
//
//	alg := matrix.NewAlgebra[float64](ring.Reals{})
func NewAlgebra[E comparable, R ring.Ring[E]](r R) *Algebra[E, R] {
	return &Algebra[E, R]{r: r}
}

// Ring returns the ring the algebra delegates to.
func (a *Algebra[E, R]) Ring() R { return a.r }

// Add returns the element-wise sum x + y.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (a *Algebra[E, R]) Add(x, y Matrix[E]) (*Dense[E], error) {
	return a.combine(x, y, a.r.Add, opAdd)
}

// Subtract returns the element-wise difference x − y.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (a *Algebra[E, R]) Subtract(x, y Matrix[E]) (*Dense[E], error) {
	return a.combine(x, y, a.r.Subtract, opSubtract)
}

// combine is the shared kernel behind Add/Subtract.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(x, y).
//   - Stage 2: single flat loop 0..n-1 over both buffers into a fresh result.
func (a *Algebra[E, R]) combine(x, y Matrix[E], op func(E, E) E, opTag string) (*Dense[E], error) {
	if err := ValidateBinarySameShape(x, y); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	xd, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	yd, err := asDense(y)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, _ := NewDense[E](xd.r, xd.c) // shape validated above
	for k := range res.data {
		res.data[k] = op(xd.data[k], yd.data[k])
	}

	return res, nil
}

// Negative returns −x element-wise.
// Complexity: O(r*c).
func (a *Algebra[E, R]) Negative(x Matrix[E]) (*Dense[E], error) {
	return a.mapEach(x, a.r.Negative, opNegative)
}

// Scale returns s·x (scalar on the left, matching Multiply's operand order).
// Complexity: O(r*c).
func (a *Algebra[E, R]) Scale(x Matrix[E], s E) (*Dense[E], error) {
	return a.mapEach(x, func(v E) E { return a.r.Multiply(s, v) }, opScale)
}

// mapEach applies f to every entry of x into a fresh Dense.
func (a *Algebra[E, R]) mapEach(x Matrix[E], f func(E) E, opTag string) (*Dense[E], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	xd, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, _ := NewDense[E](xd.r, xd.c)
	for k, v := range xd.data {
		res.data[k] = f(v)
	}

	return res, nil
}

// Multiply returns the matrix product x × y.
// MAIN DESCRIPTION:
//   - Standard triple loop generalized to any ring: entry (i,j) is the ring
//     sum over k of x[i,k]·y[k,j], accumulated from Zero().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(x, y).
//   - Stage 2: fixed i→j→k loop order over flat buffers.
//
// Behavior highlights:
//   - Products are formed as Multiply(x[i,k], y[k,j]) (left operand first).
//   - No floating-point shortcuts; the ring decides everything.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (x.Cols != y.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (a *Algebra[E, R]) Multiply(x, y Matrix[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(x, y); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	xd, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	yd, err := asDense(y)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	var (
		rows, inner, cols = xd.r, xd.c, yd.c
		i, j, k           int
		acc               E
	)
	res, _ := NewDense[E](rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = a.r.Zero()
			for k = 0; k < inner; k++ {
				acc = a.r.Add(acc, a.r.Multiply(xd.data[i*inner+k], yd.data[k*cols+j]))
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// MatVec returns y = m·x for a column vector x of length m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (a *Algebra[E, R]) MatVec(m Matrix[E], x []E) ([]E, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]E, md.r)
	for i := 0; i < md.r; i++ {
		acc := a.r.Zero()
		for j := 0; j < md.c; j++ {
			acc = a.r.Add(acc, a.r.Multiply(md.data[i*md.c+j], x[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Zeros returns a rows×cols matrix filled with the ring's Zero().
// Unlike NewDense this does not rely on E's Go zero value.
func (a *Algebra[E, R]) Zeros(rows, cols int) (*Dense[E], error) {
	res, err := NewDense[E](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}
	zero := a.r.Zero()
	for k := range res.data {
		res.data[k] = zero
	}

	return res, nil
}

// Identity returns I_n: One() on the diagonal, Zero() elsewhere.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2).
func (a *Algebra[E, R]) Identity(n int) (*Dense[E], error) {
	res, err := a.Zeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := a.r.One()
	for i := 0; i < n; i++ {
		res.data[i*n+i] = one
	}

	return res, nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination over the ring.
// MAIN DESCRIPTION:
//   - Row-reduce a private working copy of m to the identity while applying
//     the same row operations to an accumulator that starts as I_n.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into work; acc = Identity(n).
//   - Stage 2: for each column j:
//   - pivot = first row p in j..n-1 with work[p,j] != Zero(); none → ErrSingular.
//   - inv = ring.Inverse(work[p,j]); a ring failure is returned unchanged.
//   - for every row i != p: f = inv·(−work[i,j]); row_i += f·row_p (work and acc).
//   - scale row_p by inv (work and acc).
//   - swap rows p and j (work and acc).
//   - Stage 3: acc holds m⁻¹.
//
// Behavior highlights:
//   - First-nonzero pivoting: rings carry no ordering, so no magnitude test.
//   - Correct over any commutative ring whose encountered pivots are units
//     (e.g. unimodular integer matrices), not only over fields.
//   - The caller's matrix is never modified.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (ValidateSquare).
//   - ErrSingular when a column has no nonzero pivot candidate.
//   - ring errors (ring.ErrNotInvertible, ...) from inverting a pivot.
//   - No partial results: any failure aborts the whole inversion.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Over the reals this is not numerically robust (no partial pivoting);
//     exact rings are the primary target.
func (a *Algebra[E, R]) Inverse(m Matrix[E]) (*Dense[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	work, err := NewDenseFrom(m) // never mutate the caller's matrix
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := work.r
	acc, err := a.Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		zero       = a.r.Zero()
		i, j, p    int
		pivotInv   E
		factor     E
		workEntry  E
		pivotFound bool
	)
	for j = 0; j < n; j++ {
		// Pivot search: first nonzero entry in column j, rows j..n-1.
		pivotFound = false
		for p = j; p < n; p++ {
			if work.data[p*n+j] != zero {
				pivotFound = true
				break
			}
		}
		if !pivotFound {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", j, ErrSingular))
		}

		pivotInv, err = a.r.Inverse(work.data[p*n+j])
		if err != nil {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot (%d,%d): %w", p, j, err))
		}

		// Eliminate column j from every other row.
		for i = 0; i < n; i++ {
			if i == p {
				continue
			}
			workEntry = work.data[i*n+j]
			if workEntry == zero {
				continue // adding a zero multiple is a no-op
			}
			factor = a.r.Multiply(pivotInv, a.r.Negative(workEntry))
			a.addScaledRow(acc, factor, p, i)
			a.addScaledRow(work, factor, p, i)
		}

		a.scaleRow(acc, p, pivotInv)
		a.scaleRow(work, p, pivotInv)

		acc.swapRows(j, p)
		work.swapRows(j, p)
	}

	return acc, nil
}

// addScaledRow performs row[dst] += s · row[src] in place.
func (a *Algebra[E, R]) addScaledRow(m *Dense[E], s E, src, dst int) {
	srcRow := m.data[src*m.c : (src+1)*m.c]
	dstRow := m.data[dst*m.c : (dst+1)*m.c]
	for j := range dstRow {
		dstRow[j] = a.r.Add(dstRow[j], a.r.Multiply(s, srcRow[j]))
	}
}

// scaleRow performs row[i] *= s in place.
func (a *Algebra[E, R]) scaleRow(m *Dense[E], i int, s E) {
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = a.r.Multiply(row[j], s)
	}
}

// Equal reports whether x and y have the same shape and identical entries.
// nil matrices are never equal to anything.
func Equal[E comparable](x, y Matrix[E]) bool {
	if ValidateBinarySameShape(x, y) != nil {
		return false
	}
	xd, err := asDense(x)
	if err != nil {
		return false
	}
	yd, err := asDense(y)
	if err != nil {
		return false
	}
	for k := range xd.data {
		if xd.data[k] != yd.data[k] {
			return false
		}
	}

	return true
}

// Transpose returns mᵀ. It needs no ring and works for any element type.
// Complexity: O(r*c).
func Transpose[E any](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, _ := NewDense[E](md.c, md.r)
	for i := 0; i < md.r; i++ {
		for j := 0; j < md.c; j++ {
			res.data[j*md.r+i] = md.data[i*md.c+j]
		}
	}

	return res, nil
}
