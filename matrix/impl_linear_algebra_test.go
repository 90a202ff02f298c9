// SPDX-License-Identifier: MIT
// Package matrix_test verifies the ring-parameterized kernels of Algebra.
//
// Purpose:
//   - Exercise Add/Subtract/Multiply/Inverse over exact (integers) and inexact
//     (reals) rings with concrete fixtures.
//   - Check algebraic laws on seeded random inputs.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/ring"
)

const realTol = 1e-10

func intAlgebra() *matrix.Algebra[int, ring.Integers] {
	return matrix.NewAlgebra[int](ring.Integers{})
}

func realAlgebra() *matrix.Algebra[float64, ring.Reals] {
	return matrix.NewAlgebra[float64](ring.Reals{})
}

func TestAddIntegers(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{5, 6}, {7, 8}})

	sum, err := alg.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 8}, {10, 12}}, sum.ToRows())

	diff, err := alg.Subtract(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 4}, {4, 4}}, diff.ToRows())

	// Same result through the materializing path.
	sum2, err := alg.Add(hide[int]{a}, hide[int]{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](sum, sum2))
}

func TestAddDimensionMismatch(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{1, 2, 3}})

	_, err := alg.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = alg.Subtract(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense[int]
	_, err = alg.Add(typedNil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = alg.Multiply(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMultiplyIntegers(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	p, err := alg.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, p.ToRows())

	_, err = alg.Multiply(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVecAndScale(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	y, err := alg.MatVec(a, []int{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []int{-2, -2}, y)

	_, err = alg.MatVec(a, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := alg.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{-2, -4, -6}, {-8, -10, -12}}, s.ToRows())
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}})

	tr, err := matrix.Transpose[string](a)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "d"}, {"b", "e"}, {"c", "f"}}, tr.ToRows())

	_, err = matrix.Transpose[string](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentityAndZeros(t *testing.T) {
	t.Parallel()
	alg := realAlgebra()

	id, err := alg.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	_, err = alg.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.ZerosLike(alg, MustRows(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}}, z.ToRows())

	_, err = matrix.IdentityLike(alg, MustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	t.Run("reals", func(t *testing.T) {
		t.Parallel()
		a := MustRows(t, [][]float64{
			{2, 0, 1},
			{0, 1, 0},
			{-1, 0, 2},
		})
		want := [][]float64{
			{0.4, 0, -0.2},
			{0, 1, 0},
			{0.2, 0, 0.4},
		}

		inv, err := realAlgebra().Inverse(a)
		require.NoError(t, err)
		if diff := cmp.Diff(want, inv.ToRows(), cmpopts.EquateApprox(0, realTol)); diff != "" {
			t.Fatalf("Inverse mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unimodular integers", func(t *testing.T) {
		t.Parallel()
		inv, err := intAlgebra().Inverse(MustRows(t, [][]int{{1, 2}, {3, 7}}))
		require.NoError(t, err)
		require.Equal(t, [][]int{{7, -2}, {-3, 1}}, inv.ToRows())
	})

	t.Run("row swap", func(t *testing.T) {
		t.Parallel()
		inv, err := intAlgebra().Inverse(MustRows(t, [][]int{{0, 1}, {1, 0}}))
		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1}, {1, 0}}, inv.ToRows())
	})

	t.Run("one by one", func(t *testing.T) {
		t.Parallel()
		inv, err := matrix.InverseOver[float64](ring.Reals{}, MustRows(t, [][]float64{{4}}))
		require.NoError(t, err)
		require.Equal(t, [][]float64{{0.25}}, inv.ToRows())
	})
}

func TestInverseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]int
		want error
	}{
		{name: "singular", in: [][]int{{1, 2}, {2, 4}}, want: matrix.ErrSingular},
		{name: "zero column", in: [][]int{{0, 1}, {0, 1}}, want: matrix.ErrSingular},
		{name: "non-unit pivot", in: [][]int{{2, 1}, {1, 1}}, want: ring.ErrNotInvertible},
		{name: "non-square", in: [][]int{{1, 2, 3}, {4, 5, 6}}, want: matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := intAlgebra().Inverse(MustRows(t, tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := intAlgebra().Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseSingularReals(t *testing.T) {
	t.Parallel()
	_, err := realAlgebra().Inverse(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotErrorIs(t, err, ring.ErrNotInvertible)
}

// TestInverseDoesNotMutate ensures the caller's matrix survives inversion intact,
// on success and on failure.
func TestInverseDoesNotMutate(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()

	a := MustRows(t, [][]int{{1, 2}, {3, 7}})
	before := a.ToRows()
	_, err := alg.Inverse(a)
	require.NoError(t, err)
	require.Equal(t, before, a.ToRows())

	s := MustRows(t, [][]int{{1, 2}, {2, 4}})
	before = s.ToRows()
	_, err = alg.Inverse(s)
	require.Error(t, err)
	require.Equal(t, before, s.ToRows())
}

func TestAdditiveLaws(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		r, c := 1+rng.Intn(5), 1+rng.Intn(5)
		a := randomInts(t, rng, r, c, 50)
		b := randomInts(t, rng, r, c, 50)
		d := randomInts(t, rng, r, c, 50)

		ab, err := alg.Add(a, b)
		require.NoError(t, err)
		ba, err := alg.Add(b, a)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](ab, ba), "add must commute")

		abd, err := alg.Add(ab, d)
		require.NoError(t, err)
		bd, err := alg.Add(b, d)
		require.NoError(t, err)
		abd2, err := alg.Add(a, bd)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](abd, abd2), "add must associate")

		neg, err := alg.Negative(a)
		require.NoError(t, err)
		zero, err := alg.Add(a, neg)
		require.NoError(t, err)
		want, err := alg.Zeros(r, c)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](want, zero), "a + (-a) must vanish")

		sub, err := alg.Subtract(a, b)
		require.NoError(t, err)
		negB, err := alg.Negative(b)
		require.NoError(t, err)
		sub2, err := alg.Add(a, negB)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](sub, sub2))
	}
}

func TestMultiplyAssociative(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		r, k, l, c := 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4), 1+rng.Intn(4)
		a := randomInts(t, rng, r, k, 9)
		b := randomInts(t, rng, k, l, 9)
		d := randomInts(t, rng, l, c, 9)

		ab, err := alg.Multiply(a, b)
		require.NoError(t, err)
		left, err := alg.Multiply(ab, d)
		require.NoError(t, err)

		bd, err := alg.Multiply(b, d)
		require.NoError(t, err)
		right, err := matrix.ProductOver[int](ring.Integers{}, a, bd)
		require.NoError(t, err)

		require.True(t, matrix.Equal[int](left, right), "trial %d", trial)

		id, err := alg.Identity(k)
		require.NoError(t, err)
		ai, err := alg.Multiply(a, id)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](a, ai))
	}
}

func TestInverseRoundTripIntegers(t *testing.T) {
	t.Parallel()
	alg := intAlgebra()
	rng := rand.New(rand.NewSource(3))

	for n := 1; n <= 6; n++ {
		a := unimodular(t, rng, n)
		inv, err := alg.Inverse(a)
		require.NoError(t, err)

		id, err := alg.Identity(n)
		require.NoError(t, err)
		left, err := alg.Multiply(inv, a)
		require.NoError(t, err)
		right, err := alg.Multiply(a, inv)
		require.NoError(t, err)
		require.True(t, matrix.Equal[int](id, left), "n=%d: inv·a != I", n)
		require.True(t, matrix.Equal[int](id, right), "n=%d: a·inv != I", n)
	}
}

func TestInverseRoundTripReals(t *testing.T) {
	t.Parallel()
	alg := realAlgebra()
	rng := rand.New(rand.NewSource(5))

	for n := 1; n <= 6; n++ {
		// Strict diagonal dominance keeps the matrix well conditioned.
		a, err := matrix.NewDense[float64](n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := rng.Float64()*2 - 1
				if i == j {
					v += float64(n) + 1
				}
				require.NoError(t, a.Set(i, j, v))
			}
		}

		inv, err := alg.Inverse(a)
		require.NoError(t, err)
		got, err := alg.Multiply(a, inv)
		require.NoError(t, err)
		id, err := alg.Identity(n)
		require.NoError(t, err)
		if diff := cmp.Diff(id.ToRows(), got.ToRows(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("n=%d: a·inv != I (-want +got):\n%s", n, diff)
		}
	}
}
