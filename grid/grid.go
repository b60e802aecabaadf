// SPDX-License-Identifier: MIT

package grid

import "github.com/cockroachdb/errors"

// Grid is an immutable rectangular grid of cells.
type Grid[T any] struct {
	rows, cols int
	cells      [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input; later writes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular (wrapped with the offending row) if any row length differs.
// Complexity: O(rows×cols) time and memory.
func New[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for i, row := range values {
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", i, len(row), w)
		}
	}
	// One backing array, rows sliced with capped capacity.
	backing := make([]T, h*w)
	cells := make([][]T, h)
	for i := 0; i < h; i++ {
		lo, hi := i*w, (i+1)*w
		cells[i] = backing[lo:hi:hi]
		copy(cells[i], values[i])
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// At returns the cell at (row, col). The caller must check InBounds.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) T { return g.cells[row][col] }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Board returns the bounds of g.
func (g *Grid[T]) Board() Board { return Board{Height: g.rows, Width: g.cols} }
