// SPDX-License-Identifier: MIT

package matrixpath

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
)

type cell struct {
	i, j int
}

func load(m [][]int) (*grid.Grid[int], error) {
	g, err := grid.New(m)
	if err != nil {
		return nil, memo.Tag(errors.Wrap(err, "matrixpath"), memo.ErrInvalidInput)
	}

	return g, nil
}

// extend combines the current value v with the successor pairs.
func extend(v int, succ ...memo.Pair) memo.Pair {
	hi, lo := memo.Maximize[int](), memo.Minimize[int]()
	for _, s := range succ {
		a, b := v*s.Max, v*s.Min
		hi.Offer(a)
		hi.Offer(b)
		lo.Offer(a)
		lo.Offer(b)
	}

	return memo.Pair{Max: hi.Or(v), Min: lo.Or(v)}
}

func recurrence(g *grid.Grid[int]) memo.Recurrence[cell, memo.Pair] {
	last := cell{g.Rows() - 1, g.Cols() - 1}
	return func(c cell, sub func(cell) memo.Pair) memo.Pair {
		v := g.At(c.i, c.j)
		if c == last {
			return memo.Pair{Max: v, Min: v}
		}
		switch {
		case c.i == last.i:
			return extend(v, sub(cell{c.i, c.j + 1}))
		case c.j == last.j:
			return extend(v, sub(cell{c.i + 1, c.j}))
		default:
			return extend(v, sub(cell{c.i + 1, c.j}), sub(cell{c.i, c.j + 1}))
		}
	}
}

func result(p memo.Pair, err error) (int, error) {
	if err != nil {
		return 0, err
	}

	return p.Max, nil
}

// Exhaustive returns the largest path product by following every path.
func Exhaustive(m [][]int, opts ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil {
		return 0, err
	}

	return result(memo.NewExhaustive(recurrence(g), memo.Gather(opts...)).Eval(cell{}))
}

// TopDown returns the largest path product by memoized recursion.
func TopDown(m [][]int, opts ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	b := g.Board()
	cache := memo.NewCache[cell, memo.Pair](o, b.Squares(), func(c cell) int { return b.Index(c.i, c.j) })

	return result(memo.NewTopDown(recurrence(g), cache, o).Eval(cell{}))
}

// BottomUp returns the largest path product by sweeping from the
// bottom-right cell.
func BottomUp(m [][]int, opts ...memo.Option) (int, error) {
	g, err := load(m)
	if err != nil {
		return 0, err
	}
	rows, cols := g.Rows(), g.Cols()

	if memo.Gather(opts...).Memory == memo.RollingArray {
		r := memo.NewRolling[memo.Pair](cols)
		for i := rows - 1; i >= 0; i-- {
			var below []memo.Pair
			if i < rows-1 {
				below = r.Prev()
			}
			sweep(g, i, below, r.Curr())
			r.Advance()
		}

		return r.Prev()[0].Max, nil
	}

	t := memo.NewTable[memo.Pair](rows, cols)
	for i := rows - 1; i >= 0; i-- {
		var below []memo.Pair
		if i < rows-1 {
			below = t.Row(i + 1)
		}
		sweep(g, i, below, t.Row(i))
	}

	return t.At(0, 0).Max, nil
}

// sweep fills row i right to left; below is row i+1, or nil for the last row.
func sweep(g *grid.Grid[int], i int, below, row []memo.Pair) {
	last := len(row) - 1
	for j := last; j >= 0; j-- {
		v := g.At(i, j)
		switch {
		case below == nil && j == last:
			row[j] = memo.Pair{Max: v, Min: v}
		case below == nil:
			row[j] = extend(v, row[j+1])
		case j == last:
			row[j] = extend(v, below[j])
		default:
			row[j] = extend(v, below[j], row[j+1])
		}
	}
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, m [][]int, opts ...memo.Option) (int, error) {
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
