// SPDX-License-Identifier: MIT

package targetsum

import (
	"math"

	"github.com/katalvlaran/dpkit/memo"
)

type state struct {
	i, sum int
}

// prepare returns the magnitudes of nums and their total. +v and -v are
// the same pair of choices, so a negative number counts as its magnitude.
func prepare(nums []int) ([]int, int, error) {
	abs := make([]int, len(nums))
	total := 0
	for i, v := range nums {
		if v < 0 {
			if v == math.MinInt {
				return nil, 0, memo.Overflow("targetsum: nums[%d]=%d has no magnitude", i, v)
			}
			v = -v
		}
		if v > (math.MaxInt/2-1)-total {
			return nil, 0, memo.Overflow("targetsum: running sums exceed the int range at nums[%d]", i)
		}
		abs[i] = v
		total += v
	}

	return abs, total, nil
}

func reachable(total, target int) bool {
	return target >= -total && target <= total
}

func recurrence(nums []int, target int) memo.Recurrence[state, int] {
	return func(s state, sub func(state) int) int {
		if s.i == len(nums) {
			if s.sum == target {
				return 1
			}
			return 0
		}
		v := nums[s.i]

		return sub(state{s.i + 1, s.sum + v}) + sub(state{s.i + 1, s.sum - v})
	}
}

// Exhaustive counts sign assignments by enumerating all 2ⁿ of them.
func Exhaustive(nums []int, target int, opts ...memo.Option) (int, error) {
	nums, total, err := prepare(nums)
	if err != nil || !reachable(total, target) {
		return 0, err
	}

	return memo.NewExhaustive(recurrence(nums, target), memo.Gather(opts...)).Eval(state{})
}

// TopDown counts sign assignments by memoized recursion.
func TopDown(nums []int, target int, opts ...memo.Option) (int, error) {
	nums, total, err := prepare(nums)
	if err != nil || !reachable(total, target) {
		return 0, err
	}
	o := memo.Gather(opts...)
	width := 2*total + 1
	size, err := o.CacheSize(len(nums)+1, width)
	if err != nil {
		return 0, err
	}
	index := func(s state) int { return s.i*width + s.sum + total }
	cache := memo.NewCache[state, int](o, size, index)

	return memo.NewTopDown(recurrence(nums, target), cache, o).Eval(state{})
}

// BottomUp counts sign assignments by tabulating running sums from the last
// number back to the first. Column s+S holds running sum s.
func BottomUp(nums []int, target int, opts ...memo.Option) (int, error) {
	nums, total, err := prepare(nums)
	if err != nil || !reachable(total, target) {
		return 0, err
	}
	n, width := len(nums), 2*total+1
	o := memo.Gather(opts...)
	if err := o.TableSize(n+1, width); err != nil {
		return 0, err
	}

	if o.Memory == memo.RollingArray {
		r := memo.NewRolling[int](width)
		r.Prev()[target+total] = 1
		for i := n - 1; i >= 0; i-- {
			fill(nums[i], r.Prev(), r.Curr())
			r.Advance()
		}

		return r.Prev()[total], nil
	}

	t := memo.NewTable[int](n+1, width)
	t.Set(n, target+total, 1)
	for i := n - 1; i >= 0; i-- {
		fill(nums[i], t.Row(i+1), t.Row(i))
	}

	return t.At(0, total), nil
}

// fill computes row i from row i+1 for the number v.
func fill(v int, next, curr []int) {
	for s := range curr {
		ways := 0
		if up := s + v; up < len(next) {
			ways += next[up]
		}
		if down := s - v; down >= 0 {
			ways += next[down]
		}
		curr[s] = ways
	}
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, nums []int, target int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(nums, target, opts...)
	case memo.TopDown:
		return TopDown(nums, target, opts...)
	case memo.BottomUp:
		return BottomUp(nums, target, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
