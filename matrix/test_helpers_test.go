// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Force the non-*Dense path through hide[E] so both code paths are covered.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide[E]{X} in tests to force the materializing (non-*Dense) path.
type hide[E any] struct{ matrix.Matrix[E] }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows[E any](t *testing.T, rows [][]E) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[E any](t *testing.T, m matrix.Matrix[E], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomInts returns an r×c matrix with entries in [-span, span].
func randomInts(t *testing.T, rng *rand.Rand, r, c, span int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewDense[int](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Intn(2*span+1)-span))
		}
	}

	return m
}

// unimodular returns L·U where L is unit lower and U unit upper triangular
// with small random off-diagonal entries. Such a matrix has determinant 1 and
// Gauss–Jordan meets only unit pivots, so it is invertible over the integers.
func unimodular(t *testing.T, rng *rand.Rand, n int) *matrix.Dense[int] {
	t.Helper()
	l, err := matrix.NewDense[int](n, n)
	require.NoError(t, err)
	u, err := matrix.NewDense[int](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, l.Set(i, i, 1))
		require.NoError(t, u.Set(i, i, 1))
		for j := 0; j < i; j++ {
			require.NoError(t, l.Set(i, j, rng.Intn(5)-2))
			require.NoError(t, u.Set(j, i, rng.Intn(5)-2))
		}
	}
	alg := intAlgebra()
	m, err := alg.Multiply(l, u)
	require.NoError(t, err)

	return m
}
