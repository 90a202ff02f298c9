// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for one-off calls that do not want to keep an
//     Algebra value around.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

import "github.com/katalvlaran/algebra/ring"

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Errors: ErrNilMatrix.
func CloneMatrix[E any](m Matrix[E]) (Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// IdentityLike returns I with dimension = Rows(m) over alg's ring; requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[E comparable, R ring.Ring[E]](alg *Algebra[E, R], m Matrix[E]) (*Dense[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return alg.Identity(m.Rows())
}

// ZerosLike returns a matrix of r.Zero() entries with the same shape as m.
func ZerosLike[E comparable, R ring.Ring[E]](alg *Algebra[E, R], m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return alg.Zeros(m.Rows(), m.Cols())
}

// InverseOver is a one-shot form of NewAlgebra(r).Inverse(m).
func InverseOver[E comparable, R ring.Ring[E]](r R, m Matrix[E]) (*Dense[E], error) {
	return NewAlgebra[E](r).Inverse(m)
}

// ProductOver is a one-shot form of NewAlgebra(r).Multiply(x, y).
func ProductOver[E comparable, R ring.Ring[E]](r R, x, y Matrix[E]) (*Dense[E], error) {
	return NewAlgebra[E](r).Multiply(x, y)
}

// Map returns a new matrix with f applied to every entry of m. Handy for
// rendering: Map(m, f.Format) yields a Dense[string] whose String and LaTeX
// use the ring's own notation.
// Errors: ErrNilMatrix.
func Map[E, F any](m Matrix[E], f func(E) F) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Map", err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Map", err)
	}
	out, _ := NewDense[F](src.r, src.c) // shape comes from a valid matrix
	for i, v := range src.data {
		out.data[i] = f(v)
	}

	return out, nil
}
