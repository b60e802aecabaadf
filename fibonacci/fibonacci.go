// SPDX-License-Identifier: MIT

package fibonacci

import "github.com/katalvlaran/dpkit/memo"

// MaxN is the largest n whose Fibonacci number fits an int64.
const MaxN = 92

// recurrence is shared by Exhaustive and TopDown.
var recurrence memo.Recurrence[int, int] = func(n int, sub func(int) int) int {
	if n < 2 {
		return n
	}

	return sub(n-1) + sub(n-2)
}

func validate(n int) error {
	if n < 0 {
		return memo.Invalid("fibonacci: n=%d must be >= 0", n)
	}
	if n > MaxN {
		return memo.Overflow("fibonacci: n=%d exceeds %d", n, MaxN)
	}

	return nil
}

// Exhaustive returns F(n) by plain recursion.
func Exhaustive(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence, memo.Gather(opts...)).Eval(n)
}

// TopDown returns F(n) by memoized recursion.
func TopDown(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	cache := memo.NewCache[int, int](o, n+1, memo.Identity)

	return memo.NewTopDown(recurrence, cache, o).Eval(n)
}

// BottomUp returns F(n) by tabulation from F(0) upward.
// With memo.RollingArray only the last two values are kept.
func BottomUp(n int, opts ...memo.Option) (int, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	if n < 2 {
		return n, nil
	}
	if memo.Gather(opts...).Memory == memo.RollingArray {
		prev, curr := 0, 1
		for i := 2; i <= n; i++ {
			prev, curr = curr, prev+curr
		}

		return curr, nil
	}

	table := make([]int, n+1)
	table[1] = 1
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table[n], nil
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
