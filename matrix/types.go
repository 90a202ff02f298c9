// SPDX-License-Identifier: MIT

// Package matrix: the storage-facing Matrix interface.
// Arithmetic never lives on a Matrix; see Algebra.
package matrix

// Matrix represents a two-dimensional mutable array of elements of type E.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[E any] interface {
	// Rows returns the number of rows (the height).
	Rows() int

	// Cols returns the number of columns (the width).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (E, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v E) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[E]
}
