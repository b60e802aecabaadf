// SPDX-License-Identifier: MIT

package coinchange

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
)

// Solver answers minimum-coin queries for one immutable coin system.
type Solver struct {
	coins []int // ascending, distinct, positive
}

// New validates coins and returns a Solver. Duplicates are dropped; every
// coin must be positive. An empty coin system is valid (only 0 is reachable).
func New(coins []int) (*Solver, error) {
	seen := make(map[int]bool, len(coins))
	set := make([]int, 0, len(coins))
	for i, c := range coins {
		if c <= 0 {
			return nil, memo.Invalid("coinchange: coins[%d]=%d must be > 0", i, c)
		}
		if !seen[c] {
			seen[c] = true
			set = append(set, c)
		}
	}
	sort.Ints(set)

	return &Solver{coins: set}, nil
}

// Coins returns the distinct denominations in ascending order.
func (s *Solver) Coins() []int {
	out := make([]int, len(s.coins))
	copy(out, s.coins)

	return out
}

func (s *Solver) recurrence() memo.Recurrence[int, memo.Optimum[int]] {
	return func(n int, sub func(int) memo.Optimum[int]) memo.Optimum[int] {
		best := memo.Minimize[int]()
		if n == 0 {
			best.Offer(0)
			return best
		}
		for _, c := range s.coins {
			if c > n {
				break
			}
			if v, ok := sub(n - c).Value(); ok {
				best.Offer(v + 1)
			}
		}

		return best
	}
}

func unwrap(amount int, best memo.Optimum[int], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	v, ok := best.Value()
	if !ok {
		return 0, errors.Wrapf(memo.ErrNoSolution, "coinchange: amount %d is not reachable", amount)
	}

	return v, nil
}

func validate(amount int) error {
	if amount < 0 {
		return memo.Invalid("coinchange: amount %d must be >= 0", amount)
	}

	return nil
}

// Exhaustive returns the minimum coin count for amount by plain recursion.
func (s *Solver) Exhaustive(amount int, opts ...memo.Option) (int, error) {
	if err := validate(amount); err != nil {
		return 0, err
	}
	best, err := memo.NewExhaustive(s.recurrence(), memo.Gather(opts...)).Eval(amount)

	return unwrap(amount, best, err)
}

// TopDown returns the minimum coin count for amount by memoized recursion.
func (s *Solver) TopDown(amount int, opts ...memo.Option) (int, error) {
	if err := validate(amount); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	size, err := o.CacheSize(amount + 1)
	if err != nil {
		return 0, err
	}
	cache := memo.NewCache[int, memo.Optimum[int]](o, size, memo.Identity)
	best, err := memo.NewTopDown(s.recurrence(), cache, o).Eval(amount)

	return unwrap(amount, best, err)
}

// BottomUp returns the minimum coin count for amount by tabulating 0..amount.
func (s *Solver) BottomUp(amount int, _ ...memo.Option) (int, error) {
	if err := validate(amount); err != nil {
		return 0, err
	}
	size, err := memo.Cells(amount + 1)
	if err != nil {
		return 0, err
	}
	table := make([]memo.Optimum[int], size)
	table[0] = memo.Minimize[int]()
	table[0].Offer(0)
	for n := 1; n <= amount; n++ {
		best := memo.Minimize[int]()
		for _, c := range s.coins {
			if c > n {
				break
			}
			if v, ok := table[n-c].Value(); ok {
				best.Offer(v + 1)
			}
		}
		table[n] = best
	}

	return unwrap(amount, table[amount], nil)
}

// Solve dispatches to the evaluator selected by st.
func (s *Solver) Solve(st memo.Strategy, amount int, opts ...memo.Option) (int, error) {
	switch st {
	case memo.Exhaustive:
		return s.Exhaustive(amount, opts...)
	case memo.TopDown:
		return s.TopDown(amount, opts...)
	case memo.BottomUp:
		return s.BottomUp(amount, opts...)
	default:
		return 0, memo.Unknown(st)
	}
}
