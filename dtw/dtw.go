// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
)

type cell struct {
	i, j int
}

var inf = math.Inf(1)

// step is the shared cell update; every strategy adds in the same order.
func step(x, y, up, left, diag, penalty float64) float64 {
	return math.Abs(x-y) + min3(up+penalty, left+penalty, diag)
}

func recurrence(a, b []float64, p Params) memo.Recurrence[cell, float64] {
	return func(c cell, sub func(cell) float64) float64 {
		switch {
		case c.i == 0 && c.j == 0:
			return 0
		case c.i == 0 || c.j == 0 || !p.allows(c.i, c.j):
			return inf
		}

		return step(a[c.i-1], b[c.j-1],
			sub(cell{c.i - 1, c.j}), sub(cell{c.i, c.j - 1}), sub(cell{c.i - 1, c.j - 1}),
			p.SlopePenalty)
	}
}

func result(d float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsInf(d, 1) {
		return 0, errors.Wrap(memo.ErrNoSolution, "dtw: window excludes the end cell")
	}

	return d, nil
}

// Exhaustive returns the DTW distance by expanding every warping path.
func Exhaustive(a, b []float64, p Params, opts ...memo.Option) (float64, error) {
	if err := validate(a, b, p); err != nil {
		return 0, err
	}

	return result(memo.NewExhaustive(recurrence(a, b, p), memo.Gather(opts...)).Eval(cell{len(a), len(b)}))
}

// TopDown returns the DTW distance by memoized recursion.
func TopDown(a, b []float64, p Params, opts ...memo.Option) (float64, error) {
	if err := validate(a, b, p); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	width := len(b) + 1
	cache := memo.NewCache[cell, float64](o, (len(a)+1)*width, func(c cell) int { return c.i*width + c.j })

	return result(memo.NewTopDown(recurrence(a, b, p), cache, o).Eval(cell{len(a), len(b)}))
}

// BottomUp returns the DTW distance by filling the table row by row.
func BottomUp(a, b []float64, p Params, opts ...memo.Option) (float64, error) {
	if err := validate(a, b, p); err != nil {
		return 0, err
	}
	n, m := len(a), len(b)

	if memo.Gather(opts...).Memory == memo.RollingArray {
		r := memo.NewRolling[float64](m + 1)
		base(r.Prev())
		for i := 1; i <= n; i++ {
			fill(a[i-1], b, i, p, r.Prev(), r.Curr())
			r.Advance()
		}

		return result(r.Prev()[m], nil)
	}

	return result(table(a, b, p).At(n, m), nil)
}

// table builds the full (n+1)×(m+1) table.
func table(a, b []float64, p Params) *memo.Table[float64] {
	t := memo.NewTable[float64](len(a)+1, len(b)+1)
	base(t.Row(0))
	for i := 1; i <= len(a); i++ {
		fill(a[i-1], b, i, p, t.Row(i-1), t.Row(i))
	}

	return t
}

// base writes row 0: only the empty alignment is free.
func base(row []float64) {
	row[0] = 0
	for j := 1; j < len(row); j++ {
		row[j] = inf
	}
}

// fill computes row i from row i-1; x is a[i-1].
func fill(x float64, b []float64, i int, p Params, prev, row []float64) {
	row[0] = inf
	for j := 1; j < len(row); j++ {
		if !p.allows(i, j) {
			row[j] = inf
			continue
		}
		row[j] = step(x, b[j-1], prev[j], row[j-1], prev[j-1], p.SlopePenalty)
	}
}

// Path returns the DTW distance and an optimal warping path as 0-based
// (index in a, index in b) pairs from (0, 0) to (len(a)-1, len(b)-1).
// Ties prefer the diagonal step, then advancing a, then advancing b.
// Complexity: O(n·m) time and memory.
func Path(a, b []float64, p Params) (float64, [][2]int, error) {
	if err := validate(a, b, p); err != nil {
		return 0, nil, err
	}
	t := table(a, b, p)
	d, err := result(t.At(len(a), len(b)), nil)
	if err != nil {
		return 0, nil, err
	}

	i, j := len(a), len(b)
	path := [][2]int{{i - 1, j - 1}}
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			up := t.At(i-1, j) + p.SlopePenalty
			left := t.At(i, j-1) + p.SlopePenalty
			diag := t.At(i-1, j-1)
			switch {
			case diag <= up && diag <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, [2]int{i - 1, j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return d, path, nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, a, b []float64, p Params, opts ...memo.Option) (float64, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(a, b, p, opts...)
	case memo.TopDown:
		return TopDown(a, b, p, opts...)
	case memo.BottomUp:
		return BottomUp(a, b, p, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
