// Package matrix offers a dense, fixed-size matrix over an arbitrary ring and
// the ring-parameterized linear algebra that operates on it.
//
// The matrix package provides:
//
//   - Dense[E]: row-major storage with bounds-checked At/Set, deep Clone,
//     FromRows/ToRows converters and String/LaTeX renderers. Dense holds no
//     arithmetic, so one storage type serves every ring.
//   - Algebra[E, R]: Add, Subtract, Negative, Scale, Multiply, MatVec,
//     Identity and Gauss–Jordan Inverse, each delegating element arithmetic
//     to a ring.Ring[E] chosen at construction time.
//   - Block / Slice: assembly of a grid of sub-matrices into one matrix and
//     the inverse operation of copying a sub-block out.
//
// Inversion uses a first-nonzero pivot search (no magnitude comparison),
// which is the only sound policy over rings without an ordering. Over the
// reals this trades numerical stability for parity with the exact rings.
//
// All kernels return fresh matrices and never mutate their inputs. Errors are
// package sentinels (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation name; match them with errors.Is.
//
// Quick example:
//
//	alg := matrix.NewAlgebra[int](ring.Integers{})
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 7}})
//	inv, _ := alg.Inverse(a) // [[7, -2], [-3, 1]]
package matrix
