// SPDX-License-Identifier: MIT
package gf_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/gf"
	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/ring"
)

// TestMatrixInverseOverPackedField inverts random matrices over GF(2^8) and
// checks both products against the identity.
func TestMatrixInverseOverPackedField(t *testing.T) {
	t.Parallel()
	f, err := gf.NewPackedField(2, 8)
	require.NoError(t, err)
	alg := matrix.NewAlgebra[int](f)
	rng := rand.New(rand.NewSource(42))

	inverted := 0
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(5)
		a, err := matrix.NewDense[int](n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.NoError(t, a.Set(i, j, rng.Intn(f.Order())))
			}
		}

		inv, err := alg.Inverse(a)
		if errors.Is(err, matrix.ErrSingular) {
			continue // random matrices over a finite field are occasionally singular
		}
		require.NoError(t, err)
		inverted++

		id, err := alg.Identity(n)
		require.NoError(t, err)
		left, err := alg.Multiply(inv, a)
		require.NoError(t, err)
		right, err := alg.Multiply(a, inv)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](id, left), "trial %d", trial)
		require.True(t, matrix.Equal[int](id, right), "trial %d", trial)
	}
	require.Positive(t, inverted)
}

func TestMatrixInverseOverVectorField(t *testing.T) {
	t.Parallel()
	f, err := gf.NewVectorField(3, 2)
	require.NoError(t, err)
	alg := matrix.NewAlgebra[gf.Element](f)

	x := f.Generator()
	a, err := matrix.FromRows([][]gf.Element{
		{f.One(), x},
		{f.Exp(3), f.Zero()},
	})
	require.NoError(t, err)

	inv, err := alg.Inverse(a)
	require.NoError(t, err)
	prod, err := alg.Multiply(a, inv)
	require.NoError(t, err)
	id, err := alg.Identity(2)
	require.NoError(t, err)
	require.True(t, matrix.Equal[gf.Element](id, prod))
	require.Equal(t, "[1, X]\n[2X + 1, 0]\n", a.String())
}

// TestZeroInitializedVectorMatrix fills only part of a NewDense matrix and
// relies on the untouched entries being the field's zero.
func TestZeroInitializedVectorMatrix(t *testing.T) {
	t.Parallel()
	f, err := gf.NewVectorField(3, 2)
	require.NoError(t, err)
	alg := matrix.NewAlgebra[gf.Element](f)

	a, err := matrix.NewDense[gf.Element](3, 3)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, f.One()))
	require.NoError(t, a.Set(0, 2, f.Generator()))
	require.NoError(t, a.Set(1, 1, f.Generator()))
	require.NoError(t, a.Set(2, 2, f.Exp(3)))

	zeros, err := alg.Zeros(3, 3)
	require.NoError(t, err)
	require.True(t, matrix.Equal[gf.Element](zeros, mustDense(t, 3, 3)))

	sum, err := alg.Add(a, zeros)
	require.NoError(t, err)
	require.True(t, matrix.Equal[gf.Element](a, sum))

	inv, err := alg.Inverse(a)
	require.NoError(t, err)
	prod, err := alg.Multiply(a, inv)
	require.NoError(t, err)
	id, err := alg.Identity(3)
	require.NoError(t, err)
	require.True(t, matrix.Equal[gf.Element](id, prod))

	// A zero column has no pivot.
	require.NoError(t, a.Set(1, 1, gf.Element{}))
	_, err = alg.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func mustDense(t *testing.T, rows, cols int) *matrix.Dense[gf.Element] {
	t.Helper()
	m, err := matrix.NewDense[gf.Element](rows, cols)
	require.NoError(t, err)

	return m
}

func TestSingularMatrixOverField(t *testing.T) {
	t.Parallel()
	f, err := gf.NewPrimeField(5)
	require.NoError(t, err)

	// Row 2 is 3 × row 1 mod 5.
	a, err := matrix.FromRows([][]int{{1, 2}, {3, 1}})
	require.NoError(t, err)
	_, err = matrix.InverseOver[int](f, a)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotErrorIs(t, err, ring.ErrNotInvertible)

	b, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	inv, err := matrix.InverseOver[int](f, b)
	require.NoError(t, err)
	// det = −2 ≡ 3; inverse = 3⁻¹·[[4, −2], [−3, 1]] = 2·[[4, 3], [2, 1]]
	require.Equal(t, [][]int{{3, 1}, {4, 2}}, inv.ToRows())
}

func ExampleNewPackedField() {
	f, err := gf.NewPackedField(2, 8)
	if err != nil {
		fmt.Println(err)
		return
	}
	x := f.Exp(5)
	inv, _ := f.Inverse(x)
	fmt.Println(f.Format(x), "|", f.Format(inv), "|", f.Multiply(x, inv))

	// Output:
	// X^5 | X^6 + X^5 + X^3 + X^2 | 1
}
