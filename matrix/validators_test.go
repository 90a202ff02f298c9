// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense[int]

	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil[int](typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil[int](MustRows(t, [][]int{{1}})))
}

func TestValidateShapes(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	row := MustRows(t, [][]int{{1, 2}})
	col := MustRows(t, [][]int{{1}, {2}})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"same shape ok", matrix.ValidateBinarySameShape[int](a, a), nil},
		{"rows differ", matrix.ValidateSameShape[int](a, row), matrix.ErrDimensionMismatch},
		{"cols differ", matrix.ValidateSameShape[int](a, col), matrix.ErrDimensionMismatch},
		{"binary nil", matrix.ValidateBinarySameShape[int](a, nil), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare[int](a), nil},
		{"not square", matrix.ValidateSquare[int](row), matrix.ErrNonSquare},
		{"square nil", matrix.ValidateSquare[int](nil), matrix.ErrNilMatrix},
		{"mul ok", matrix.ValidateMulCompatible[int](row, col), nil},
		{"mul mismatch", matrix.ValidateMulCompatible[int](col, a), matrix.ErrDimensionMismatch},
		{"vec ok", matrix.ValidateVecLen([]int{1, 2}, 2), nil},
		{"vec short", matrix.ValidateVecLen([]int{1}, 2), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}

func TestValidateSquareMessage(t *testing.T) {
	err := matrix.ValidateSquare[int](MustRows(t, [][]int{{1, 2, 3}}))
	require.EqualError(t, err, "ValidateSquare: 1x3: matrix: matrix is not square")
}
