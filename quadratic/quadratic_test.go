// SPDX-License-Identifier: MIT
package quadratic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/quadratic"
	"github.com/katalvlaran/algebra/ring"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()
	r := quadratic.New(-5)
	x := r.Element(1, 1)  // 1 + √−5
	y := r.Element(2, -3) // 2 − 3√−5

	require.Equal(t, r.Element(3, -2), r.Add(x, y))
	require.Equal(t, r.Element(-1, 4), r.Subtract(x, y))
	require.Equal(t, r.Element(-1, -1), r.Negative(x))
	// (1 + √−5)(2 − 3√−5) = 2 + 15 + (−3 + 2)√−5
	require.Equal(t, r.Element(17, -1), r.Multiply(x, y))
	require.Equal(t, 6.0, r.Norm(x))
	require.Equal(t, r.Element(1, -1), r.Conjugate(x))
	require.Equal(t, r.Element(6, 0), r.Multiply(x, r.Conjugate(x)))
	require.Equal(t, r.One(), r.Multiply(r.One(), r.One()))
	require.Equal(t, r.Zero(), r.Multiply(x, r.Zero()))
}

func TestDivide(t *testing.T) {
	t.Parallel()
	r := quadratic.New(-5)

	q, err := r.Divide(r.Element(6, 0), r.Element(1, 1))
	require.NoError(t, err)
	require.Equal(t, r.Element(1, -1), q)
	require.True(t, r.IsIntegral(q))

	q, err = r.Divide(r.Element(1, 0), r.Element(2, 0))
	require.NoError(t, err)
	require.Equal(t, r.Element(0.5, 0), q)
	require.False(t, r.IsIntegral(q))

	_, err = r.Divide(r.One(), r.Zero())
	require.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func TestInverse(t *testing.T) {
	t.Parallel()
	r := quadratic.New(2)

	inv, err := r.Inverse(r.Element(1, 1)) // norm −1: a unit
	require.NoError(t, err)
	require.Equal(t, r.Element(-1, 1), inv)
	require.Equal(t, r.One(), r.Multiply(r.Element(1, 1), inv))

	_, err = r.Inverse(r.Element(2, 0))
	require.ErrorIs(t, err, ring.ErrNotInvertible)
	require.NotErrorIs(t, err, ring.ErrDivisionByZero)

	_, err = r.Inverse(r.Zero())
	require.ErrorIs(t, err, ring.ErrDivisionByZero)
}

func TestFormat(t *testing.T) {
	t.Parallel()
	r := quadratic.New(-5)
	tests := []struct {
		in   quadratic.Element
		want string
	}{
		{in: r.Zero(), want: "0"},
		{in: r.Element(7, 0), want: "7"},
		{in: r.Element(1, 1), want: `1+\sqrt{-5}`},
		{in: r.Element(1, -1), want: `1-\sqrt{-5}`},
		{in: r.Element(0, -2), want: `-2\sqrt{-5}`},
		{in: r.Element(0, 1), want: `\sqrt{-5}`},
		{in: r.Element(2.5, 0.5), want: `2.5+0.5\sqrt{-5}`},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, r.Format(tc.in))
	}
	require.Equal(t, `Z[\sqrt{-5}]`, r.String())
}

// TestMatrixOverQuadraticRing inverts a unimodular matrix over Z[√2] and
// rejects one whose pivot is not a unit.
func TestMatrixOverQuadraticRing(t *testing.T) {
	t.Parallel()
	r := quadratic.New(2)
	alg := matrix.NewAlgebra[quadratic.Element](r)

	a, err := matrix.FromRows([][]quadratic.Element{
		{r.Element(1, 1), r.Element(0, 1)},
		{r.Zero(), r.One()},
	})
	require.NoError(t, err)

	inv, err := alg.Inverse(a)
	require.NoError(t, err)
	id, err := alg.Identity(2)
	require.NoError(t, err)
	prod, err := alg.Multiply(a, inv)
	require.NoError(t, err)
	require.True(t, matrix.Equal[quadratic.Element](id, prod))

	b, err := matrix.FromRows([][]quadratic.Element{
		{r.Element(2, 0), r.Zero()},
		{r.Zero(), r.One()},
	})
	require.NoError(t, err)
	_, err = alg.Inverse(b)
	require.ErrorIs(t, err, ring.ErrNotInvertible)
}
