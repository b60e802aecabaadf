// SPDX-License-Identifier: MIT

package tiling

import "github.com/katalvlaran/dpkit/memo"

// MaxN is the largest floor length whose tiling count fits an int64.
const MaxN = 91

var recurrence memo.Recurrence[int, int] = func(n int, sub func(int) int) int {
	if n <= 1 {
		return 1
	}

	return sub(n-1) + sub(n-2)
}

func validate(n int) error {
	if n < 0 {
		return memo.Invalid("tiling: length %d must be >= 0", n)
	}
	if n > MaxN {
		return memo.Overflow("tiling: length %d exceeds %d", n, MaxN)
	}

	return nil
}

// Exhaustive counts tilings of a 2×n floor by plain recursion.
func Exhaustive(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence, memo.Gather(opts...)).Eval(n)
}

// TopDown counts tilings by memoized recursion.
func TopDown(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)

	return memo.NewTopDown(recurrence, memo.NewCache[int, int](o, n+1, memo.Identity), o).Eval(n)
}

// BottomUp counts tilings by tabulation.
func BottomUp(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return 1, nil
	}

	if memo.Gather(opts...).Memory == memo.RollingArray {
		a, b := 1, 1 // T(i-2), T(i-1)
		for i := 2; i <= n; i++ {
			a, b = b, a+b
		}

		return b, nil
	}

	t := make([]int, n+1)
	t[0], t[1] = 1, 1
	for i := 2; i <= n; i++ {
		t[i] = t[i-1] + t[i-2]
	}

	return t[n], nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, n int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(n, opts...)
	case memo.TopDown:
		return TopDown(n, opts...)
	case memo.BottomUp:
		return BottomUp(n, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
