// SPDX-License-Identifier: MIT

package knapsack

import "github.com/katalvlaran/dpkit/memo"

// Item is one candidate for the knapsack.
type Item struct {
	Weight int `yaml:"weight" json:"weight"`
	Value  int `yaml:"value" json:"value"`
}

type state struct {
	i, c int
}

func validate(items []Item, capacity int) error {
	if capacity < 0 {
		return memo.Invalid("knapsack: capacity %d must be >= 0", capacity)
	}
	for i, it := range items {
		if it.Weight < 0 {
			return memo.Invalid("knapsack: items[%d].Weight=%d must be >= 0", i, it.Weight)
		}
	}

	return nil
}

func recurrence(items []Item) memo.Recurrence[state, int] {
	return func(s state, sub func(state) int) int {
		if s.i == len(items) {
			return 0
		}
		best := sub(state{s.i + 1, s.c})
		if it := items[s.i]; it.Weight <= s.c {
			best = max(best, it.Value+sub(state{s.i + 1, s.c - it.Weight}))
		}

		return best
	}
}

// Exhaustive returns the best value by trying every subset.
func Exhaustive(items []Item, capacity int, opts ...memo.Option) (int, error) {
	if err := validate(items, capacity); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence(items), memo.Gather(opts...)).Eval(state{0, capacity})
}

// TopDown returns the best value by memoized recursion over (item, capacity).
func TopDown(items []Item, capacity int, opts ...memo.Option) (int, error) {
	if err := validate(items, capacity); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	size, err := o.CacheSize(len(items)+1, capacity+1)
	if err != nil {
		return 0, err
	}
	width := capacity + 1
	index := func(s state) int { return s.i*width + s.c }
	cache := memo.NewCache[state, int](o, size, index)

	return memo.NewTopDown(recurrence(items), cache, o).Eval(state{0, capacity})
}

// BottomUp returns the best value by filling rows from the last item back
// to the first. memo.RollingArray keeps two rows only.
func BottomUp(items []Item, capacity int, opts ...memo.Option) (int, error) {
	if err := validate(items, capacity); err != nil {
		return 0, err
	}
	n := len(items)
	o := memo.Gather(opts...)
	if err := o.TableSize(n+1, capacity+1); err != nil {
		return 0, err
	}

	if o.Memory == memo.RollingArray {
		r := memo.NewRolling[int](capacity + 1)
		for i := n - 1; i >= 0; i-- {
			fill(items[i], r.Prev(), r.Curr())
			r.Advance()
		}

		return r.Prev()[capacity], nil
	}

	t := memo.NewTable[int](n+1, capacity+1)
	for i := n - 1; i >= 0; i-- {
		fill(items[i], t.Row(i+1), t.Row(i))
	}

	return t.At(0, capacity), nil
}

// fill computes row i (curr) from row i+1 (next) for item it.
func fill(it Item, next, curr []int) {
	for c := range curr {
		best := next[c]
		if it.Weight <= c {
			best = max(best, it.Value+next[c-it.Weight])
		}
		curr[c] = best
	}
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, items []Item, capacity int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(items, capacity, opts...)
	case memo.TopDown:
		return TopDown(items, capacity, opts...)
	case memo.BottomUp:
		return BottomUp(items, capacity, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
