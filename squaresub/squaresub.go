// SPDX-License-Identifier: MIT

package squaresub

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
)

type cell struct {
	i, j int
}

// load validates m and returns its grid, or nil for an empty matrix.
func load(m [][]bool) (*grid.Grid[bool], error) {
	if len(m) == 0 {
		return nil, nil
	}
	g, err := grid.New(m)
	switch {
	case errors.Is(err, grid.ErrNonRectangular):
		return nil, memo.Tag(errors.Wrap(err, "squaresub"), memo.ErrInvalidInput)
	case errors.Is(err, grid.ErrEmptyGrid):
		// First row is empty; every other row must be too.
		for i, row := range m {
			if len(row) != 0 {
				return nil, memo.Tag(errors.Wrapf(grid.ErrNonRectangular, "squaresub: row %d", i), memo.ErrInvalidInput)
			}
		}
		return nil, nil
	case err != nil:
		return nil, err
	}

	return g, nil
}

func recurrence(g *grid.Grid[bool]) memo.Recurrence[cell, int] {
	return func(c cell, sub func(cell) int) int {
		if !g.InBounds(c.i, c.j) || !g.At(c.i, c.j) {
			return 0
		}

		return 1 + min(sub(cell{c.i + 1, c.j}), sub(cell{c.i, c.j + 1}), sub(cell{c.i + 1, c.j + 1}))
	}
}

// largest evaluates every cell as a top-left corner and returns the best.
func largest(ev *memo.Evaluator[cell, int], g *grid.Grid[bool]) (int, error) {
	best := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			v, err := ev.Eval(cell{i, j})
			if err != nil {
				return 0, err
			}
			best = max(best, v)
		}
	}

	return best, nil
}

// Exhaustive returns the largest square side by recursing from every cell.
func Exhaustive(m [][]bool, opts ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil || g == nil {
		return 0, err
	}

	return largest(memo.NewExhaustive(recurrence(g), memo.Gather(opts...)), g)
}

// TopDown returns the largest square side by memoized recursion. Off-grid
// corners are base cases and are never cached.
func TopDown(m [][]bool, opts ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil || g == nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	b := g.Board()
	index := func(c cell) int {
		if !b.InBounds(c.i, c.j) {
			return -1
		}
		return b.Index(c.i, c.j)
	}
	cache := memo.NewCache[cell, int](o, b.Squares(), index)

	return largest(memo.NewTopDown(recurrence(g), cache, o), g)
}

// BottomUp returns the largest square side by sweeping from the
// bottom-right corner.
func BottomUp(m [][]bool, _ ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil || g == nil {
		return 0, err
	}
	rows, cols := g.Rows(), g.Cols()
	t := memo.NewTable[int](rows+1, cols+1)
	best := 0
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if !g.At(i, j) {
				continue
			}
			v := 1 + min(t.At(i+1, j), t.At(i, j+1), t.At(i+1, j+1))
			t.Set(i, j, v)
			best = max(best, v)
		}
	}

	return best, nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, m [][]bool, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(m, opts...)
	case memo.TopDown:
		return TopDown(m, opts...)
	case memo.BottomUp:
		return BottomUp(m, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
