// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opBlock = "Block"

// Block assembles a grid of sub-matrices into a single Dense.
//
// grid[bi][bj] is placed left-to-right, top-to-bottom exactly as given. Every
// block in a grid row must share one height and every block in a grid column
// must share one width; the total height is the sum of the first-column
// heights and the total width the sum of the first-row widths.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or an empty first grid row.
//   - ErrDimensionMismatch for ragged grid rows, or block heights (widths)
//     disagreeing within a grid row (column); the message names the offending
//     row/column, e.g. "Block: row 1: ...".
//   - ErrNilMatrix for a nil block.
//
// Complexity: O(total cells).
func Block[E any](grid [][]Matrix[E]) (*Dense[E], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(opBlock, ErrInvalidDimensions)
	}
	gridRows, gridCols := len(grid), len(grid[0])

	for bi, row := range grid {
		if len(row) != gridCols {
			return nil, matrixErrorf(opBlock,
				fmt.Errorf("grid row %d has %d blocks, want %d: %w", bi, len(row), gridCols, ErrDimensionMismatch))
		}
		for bj, blk := range row {
			if err := ValidateNotNil(blk); err != nil {
				return nil, matrixErrorf(opBlock, fmt.Errorf("block (%d,%d): %w", bi, bj, err))
			}
		}
	}
	if err := validateBlockHeights(grid); err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	if err := validateBlockWidths(grid); err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	height, width := 0, 0
	for bi := 0; bi < gridRows; bi++ {
		height += grid[bi][0].Rows()
	}
	for bj := 0; bj < gridCols; bj++ {
		width += grid[0][bj].Cols()
	}

	res, err := NewDense[E](height, width)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	// Copy each block to its absolute offset (running sums of heights/widths).
	rowOff := 0
	for bi := 0; bi < gridRows; bi++ {
		colOff := 0
		for bj := 0; bj < gridCols; bj++ {
			blk, err := asDense(grid[bi][bj])
			if err != nil {
				return nil, matrixErrorf(opBlock, err)
			}
			for i := 0; i < blk.r; i++ {
				dst := (rowOff+i)*width + colOff
				copy(res.data[dst:dst+blk.c], blk.data[i*blk.c:(i+1)*blk.c])
			}
			colOff += blk.c
		}
		rowOff += grid[bi][0].Rows()
	}

	return res, nil
}

// validateBlockHeights checks that all blocks of each grid row share a height.
func validateBlockHeights[E any](grid [][]Matrix[E]) error {
	for bi, row := range grid {
		want := row[0].Rows()
		for bj := 1; bj < len(row); bj++ {
			if got := row[bj].Rows(); got != want {
				return fmt.Errorf("row %d: block %d has height %d, want %d: %w", bi, bj, got, want, ErrDimensionMismatch)
			}
		}
	}

	return nil
}

// validateBlockWidths checks that all blocks of each grid column share a width.
func validateBlockWidths[E any](grid [][]Matrix[E]) error {
	for bj := range grid[0] {
		want := grid[0][bj].Cols()
		for bi := 1; bi < len(grid); bi++ {
			if got := grid[bi][bj].Cols(); got != want {
				return fmt.Errorf("column %d: block %d has width %d, want %d: %w", bj, bi, got, want, ErrDimensionMismatch)
			}
		}
	}

	return nil
}
