// SPDX-License-Identifier: MIT

package combinations

import "github.com/katalvlaran/dpkit/memo"

// MaxLen is the longest array whose selection count 2ⁿ fits an int64.
const MaxLen = 62

// recurrence counts selections of arr[i:] for an array of length n.
func recurrence(n int) memo.Recurrence[int, int] {
	return func(i int, sub func(int) int) int {
		if i == n {
			return 1
		}
		exclude := sub(i + 1)
		include := sub(i + 1)

		return exclude + include
	}
}

func validate(n int) error {
	if n > MaxLen {
		return memo.Overflow("combinations: array of %d elements exceeds %d", n, MaxLen)
	}

	return nil
}

// Exhaustive counts the selections of arr by plain recursion.
func Exhaustive[T any](arr []T, opts ...memo.Option) (int, error) {
	n := len(arr)
	if err := validate(n); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence(n), memo.Gather(opts...)).Eval(0)
}

// TopDown counts the selections of arr by memoized recursion.
func TopDown[T any](arr []T, opts ...memo.Option) (int, error) {
	n := len(arr)
	if err := validate(n); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)

	return memo.NewTopDown(recurrence(n), memo.NewCache[int, int](o, n+1, memo.Identity), o).Eval(0)
}

// BottomUp counts the selections of arr from the empty suffix backwards.
func BottomUp[T any](arr []T, opts ...memo.Option) (int, error) {
	n := len(arr)
	if err := validate(n); err != nil {
		return 0, err
	}

	if memo.Gather(opts...).Memory == memo.RollingArray {
		count := 1
		for i := n - 1; i >= 0; i-- {
			count += count
		}

		return count, nil
	}

	t := make([]int, n+1)
	t[n] = 1
	for i := n - 1; i >= 0; i-- {
		t[i] = t[i+1] + t[i+1]
	}

	return t[0], nil
}

// Solve dispatches to the evaluator selected by s.
func Solve[T any](s memo.Strategy, arr []T, opts ...memo.Option) (int, error) {
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
