// SPDX-License-Identifier: MIT

package lis

import "github.com/katalvlaran/dpkit/memo"

func recurrence(arr []int) memo.Recurrence[int, int] {
	return func(i int, sub func(int) int) int {
		if i == len(arr) {
			return 0
		}
		tail := memo.Maximize[int]()
		for j := i + 1; j < len(arr); j++ {
			if arr[j] > arr[i] {
				tail.Offer(sub(j))
			}
		}

		return 1 + tail.Or(0)
	}
}

// longest evaluates every start index with ev and returns the best.
func longest(ev *memo.Evaluator[int, int], n int) (int, error) {
	best := 0
	for i := 0; i < n; i++ {
		v, err := ev.Eval(i)
		if err != nil {
			return 0, err
		}
		best = max(best, v)
	}

	return best, nil
}

// Exhaustive returns the LIS length by recursing from every start index.
func Exhaustive(arr []int, opts ...memo.Option) (int, error) {
	return longest(memo.NewExhaustive(recurrence(arr), memo.Gather(opts...)), len(arr))
}

// TopDown returns the LIS length by memoized recursion; all start indices
// share one cache.
func TopDown(arr []int, opts ...memo.Option) (int, error) {
	o := memo.Gather(opts...)
	cache := memo.NewCache[int, int](o, len(arr)+1, memo.Identity)

	return longest(memo.NewTopDown(recurrence(arr), cache, o), len(arr))
}

// BottomUp returns the LIS length by tabulating start indices right to left.
func BottomUp(arr []int, _ ...memo.Option) (int, error) {
	n := len(arr)
	l := make([]int, n+1)
	best := 0
	for i := n - 1; i >= 0; i-- {
		tail := memo.Maximize[int]()
		for j := i + 1; j < n; j++ {
			if arr[j] > arr[i] {
				tail.Offer(l[j])
			}
		}
		l[i] = 1 + tail.Or(0)
		best = max(best, l[i])
	}

	return best, nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, arr []int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(arr, opts...)
	case memo.TopDown:
		return TopDown(arr, opts...)
	case memo.BottomUp:
		return BottomUp(arr, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
