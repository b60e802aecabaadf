// SPDX-License-Identifier: MIT

package eggdrop

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
)

type state struct {
	eggs, floors int
}

var recurrence memo.Recurrence[state, int] = func(s state, sub func(state) int) int {
	if s.floors <= 1 || s.eggs == 1 {
		return s.floors
	}
	best := memo.Minimize[int]()
	for k := 1; k <= s.floors; k++ {
		breaks := sub(state{s.eggs - 1, k - 1})
		survives := sub(state{s.eggs, s.floors - k})
		best.Offer(1 + max(breaks, survives))
	}

	return best.Or(0)
}

// normalize validates the input and clamps eggs to floors.
func normalize(eggs, floors int) (state, error) {
	if eggs < 0 || floors < 0 {
		return state{}, memo.Invalid("eggdrop: eggs=%d floors=%d must be >= 0", eggs, floors)
	}
	if eggs == 0 && floors > 0 {
		return state{}, errors.Wrapf(memo.ErrNoSolution, "eggdrop: no eggs to test %d floors", floors)
	}

	return state{eggs: min(eggs, floors), floors: floors}, nil
}

// Exhaustive returns the minimal worst-case drop count by plain recursion.
func Exhaustive(eggs, floors int, opts ...memo.Option) (int, error) {
	s, err := normalize(eggs, floors)
	if err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence, memo.Gather(opts...)).Eval(s)
}

// TopDown returns the minimal worst-case drop count by memoized recursion.
func TopDown(eggs, floors int, opts ...memo.Option) (int, error) {
	s, err := normalize(eggs, floors)
	if err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	size, err := o.CacheSize(s.eggs+1, s.floors+1)
	if err != nil {
		return 0, err
	}
	width := s.floors + 1
	index := func(st state) int { return st.eggs*width + st.floors }
	cache := memo.NewCache[state, int](o, size, index)

	return memo.NewTopDown(recurrence, cache, o).Eval(s)
}

// BottomUp returns the minimal worst-case drop count by filling one row per
// egg count, starting from the single-egg row D(1, f) = f.
func BottomUp(eggs, floors int, opts ...memo.Option) (int, error) {
	s, err := normalize(eggs, floors)
	if err != nil {
		return 0, err
	}
	if s.floors <= 1 {
		return s.floors, nil
	}
	o := memo.Gather(opts...)
	if err := o.TableSize(s.eggs+1, s.floors+1); err != nil {
		return 0, err
	}

	if o.Memory == memo.RollingArray {
		r := memo.NewRolling[int](s.floors + 1)
		linear(r.Prev())
		for e := 2; e <= s.eggs; e++ {
			fill(r.Prev(), r.Curr())
			r.Advance()
		}

		return r.Prev()[s.floors], nil
	}

	t := memo.NewTable[int](s.eggs+1, s.floors+1)
	linear(t.Row(1))
	for e := 2; e <= s.eggs; e++ {
		fill(t.Row(e-1), t.Row(e))
	}

	return t.At(s.eggs, s.floors), nil
}

// linear fills the one-egg row.
func linear(row []int) {
	for f := range row {
		row[f] = f
	}
}

// fill computes the row for e eggs from the row for e-1 eggs.
func fill(fewer, curr []int) {
	curr[0] = 0
	if len(curr) > 1 {
		curr[1] = 1
	}
	for f := 2; f < len(curr); f++ {
		best := memo.Minimize[int]()
		for k := 1; k <= f; k++ {
			best.Offer(1 + max(fewer[k-1], curr[f-k]))
		}
		curr[f] = best.Or(0)
	}
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, eggs, floors int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(eggs, floors, opts...)
	case memo.TopDown:
		return TopDown(eggs, floors, opts...)
	case memo.BottomUp:
		return BottomUp(eggs, floors, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
