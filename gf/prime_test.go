// SPDX-License-Identifier: MIT
package gf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/gf"
	"github.com/katalvlaran/algebra/ring"
)

func TestPrimeFieldArithmetic(t *testing.T) {
	t.Parallel()
	f, err := gf.NewPrimeField(7)
	require.NoError(t, err)

	require.Equal(t, 3, f.Generator())
	require.Equal(t, gf.FieldID{Characteristic: 7, Degree: 1}, f.ID())
	require.Equal(t, "GF(7)", f.String())
	require.Equal(t, 2, f.Add(5, 4))
	require.Equal(t, 4, f.Subtract(2, 5))
	require.Equal(t, 4, f.Negative(3))
	require.Equal(t, 0, f.Negative(0))
	require.Equal(t, 4, f.Multiply(-1, 3))
	require.Equal(t, 6, f.Reduce(-1))
	require.Equal(t, "6", f.Format(-8))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, f.Elements())

	inv, err := f.Inverse(3)
	require.NoError(t, err)
	require.Equal(t, 5, inv)
}

func TestPrimeFieldInverses(t *testing.T) {
	t.Parallel()
	for _, p := range []int{2, 3, 5, 13, 251, 65521} {
		f, err := gf.NewPrimeField(p)
		require.NoError(t, err)
		for x := 1; x < p; x++ {
			inv, err := f.Inverse(x)
			require.NoError(t, err)
			require.Equal(t, 1, f.Multiply(x, inv), "p=%d x=%d", p, x)
		}
		_, err = f.Inverse(0)
		require.ErrorIs(t, err, ring.ErrDivisionByZero)
		_, err = f.Inverse(p)
		require.ErrorIs(t, err, ring.ErrDivisionByZero)
	}
}

func TestPrimeFieldBinary(t *testing.T) {
	t.Parallel()
	f, err := gf.NewPrimeField(2)
	require.NoError(t, err)
	require.Equal(t, 0, f.Add(1, 1))

	inv, err := f.Inverse(1)
	require.NoError(t, err)
	require.Equal(t, 1, inv)
}

func TestPrimeFieldErrors(t *testing.T) {
	t.Parallel()
	_, err := gf.NewPrimeField(8)
	require.ErrorIs(t, err, gf.ErrNotPrime)
	_, err = gf.NewPrimeField(65537)
	require.ErrorIs(t, err, gf.ErrTooLarge)
	_, err = gf.NewPrimeField(-3)
	require.ErrorIs(t, err, gf.ErrFieldConfig)
}

// TestPrimeFieldMatchesPackedDegreeOne compares Z/pZ with GF(p^1).
func TestPrimeFieldMatchesPackedDegreeOne(t *testing.T) {
	t.Parallel()
	pf, err := gf.NewPrimeField(31)
	require.NoError(t, err)
	ff, err := gf.NewPackedField(31, 1)
	require.NoError(t, err)

	require.Equal(t, pf.Generator(), ff.Generator())
	for x := 0; x < 31; x++ {
		for y := 0; y < 31; y++ {
			require.Equal(t, pf.Add(x, y), ff.Add(x, y))
			require.Equal(t, pf.Subtract(x, y), ff.Subtract(x, y))
			require.Equal(t, pf.Multiply(x, y), ff.Multiply(x, y))
		}
	}
}
