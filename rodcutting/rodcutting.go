// SPDX-License-Identifier: MIT

package rodcutting

import "github.com/katalvlaran/dpkit/memo"

func validate(prices []int, length int) error {
	if length < 0 || length > len(prices) {
		return memo.Invalid("rodcutting: length %d outside [0,%d]", length, len(prices))
	}
	for i, p := range prices {
		if p < 0 {
			return memo.Invalid("rodcutting: prices[%d]=%d must be >= 0", i, p)
		}
	}

	return nil
}

func recurrence(prices []int) memo.Recurrence[int, int] {
	return func(n int, sub func(int) int) int {
		best := memo.Maximize[int]()
		for i := 1; i <= n; i++ {
			best.Offer(prices[i-1] + sub(n-i))
		}

		return best.Or(0)
	}
}

// Exhaustive returns the best revenue by trying every first cut recursively.
func Exhaustive(prices []int, length int, opts ...memo.Option) (int, error) {
	if err := validate(prices, length); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence(prices), memo.Gather(opts...)).Eval(length)
}

// TopDown returns the best revenue by memoized recursion.
func TopDown(prices []int, length int, opts ...memo.Option) (int, error) {
	if err := validate(prices, length); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	cache := memo.NewCache[int, int](o, length+1, memo.Identity)

	return memo.NewTopDown(recurrence(prices), cache, o).Eval(length)
}

// BottomUp returns the best revenue by tabulating lengths 0..length.
func BottomUp(prices []int, length int, _ ...memo.Option) (int, error) {
	if err := validate(prices, length); err != nil {
		return 0, err
	}
	r := make([]int, length+1)
	for n := 1; n <= length; n++ {
		best := memo.Maximize[int]()
		for i := 1; i <= n; i++ {
			best.Offer(prices[i-1] + r[n-i])
		}
		r[n] = best.Or(0)
	}

	return r[length], nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, prices []int, length int, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(prices, length, opts...)
	case memo.TopDown:
		return TopDown(prices, length, opts...)
	case memo.BottomUp:
		return BottomUp(prices, length, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
