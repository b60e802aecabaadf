// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
)

type state struct {
	mask int
	city int
}

var inf = math.Inf(1)

// extend returns G(mask, j) given the values of its successors. Cities are
// tried in ascending order by every strategy, so sums match exactly.
func extend(g *grid.Grid[float64], mask, j int, next func(mask, k int) float64) float64 {
	n := g.Rows()
	if mask == 1<<n-1 {
		return g.At(j, 0)
	}
	best := memo.Minimize[float64]()
	for k := 0; k < n; k++ {
		if mask&(1<<k) != 0 || math.IsInf(g.At(j, k), 1) {
			continue
		}
		best.Offer(g.At(j, k) + next(mask|1<<k, k))
	}

	return best.Or(inf)
}

func recurrence(g *grid.Grid[float64]) memo.Recurrence[state, float64] {
	return func(s state, sub func(state) float64) float64 {
		return extend(g, s.mask, s.city, func(mask, k int) float64 { return sub(state{mask, k}) })
	}
}

func result(cost float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsInf(cost, 1) {
		return 0, noTour()
	}

	return cost, nil
}

// Exhaustive returns the shortest tour cost by trying every ordering.
func Exhaustive(dist [][]float64, opts ...memo.Option) (float64, error) {
	g, err := load(dist)
	if err != nil {
		return 0, err
	}

	return result(memo.NewExhaustive(recurrence(g), memo.Gather(opts...)).Eval(state{mask: 1}))
}

// TopDown returns the shortest tour cost by memoized recursion over
// (visited, city) states.
func TopDown(dist [][]float64, opts ...memo.Option) (float64, error) {
	g, err := load(dist)
	if err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	n := g.Rows()
	cache := memo.NewCache[state, float64](o, n<<n, func(s state) int { return s.mask*n + s.city })

	return result(memo.NewTopDown(recurrence(g), cache, o).Eval(state{mask: 1}))
}

// BottomUp returns the shortest tour cost by filling the Held–Karp table
// from the full mask down.
func BottomUp(dist [][]float64, opts ...memo.Option) (float64, error) {
	g, err := load(dist)
	if err != nil {
		return 0, err
	}

	return result(table(g).At(1, 0), nil)
}

// table fills G for every mask containing city 0 and every city in it.
func table(g *grid.Grid[float64]) *memo.Table[float64] {
	n := g.Rows()
	t := memo.NewTable[float64](1<<n, n)
	next := func(mask, k int) float64 { return t.At(mask, k) }
	for mask := 1<<n - 1; mask >= 1; mask -= 2 {
		for j := 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				t.Set(mask, j, extend(g, mask, j, next))
			}
		}
	}

	return t
}

// Tour returns the shortest tour cost and its cities, starting and ending
// at 0. Among equal successors the lowest city index is taken.
func Tour(dist [][]float64) (float64, []int, error) {
	g, err := load(dist)
	if err != nil {
		return 0, nil, err
	}
	t := table(g)
	cost, err := result(t.At(1, 0), nil)
	if err != nil {
		return 0, nil, err
	}

	n := g.Rows()
	tour := make([]int, 1, n+1)
	for mask, j := 1, 0; mask != 1<<n-1; {
		for k := 0; k < n; k++ {
			if mask&(1<<k) != 0 || math.IsInf(g.At(j, k), 1) {
				continue
			}
			if g.At(j, k)+t.At(mask|1<<k, k) == t.At(mask, j) {
				mask, j = mask|1<<k, k
				tour = append(tour, k)
				break
			}
		}
	}

	return cost, append(tour, 0), nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, dist [][]float64, opts ...memo.Option) (float64, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(dist, opts...)
	case memo.TopDown:
		return TopDown(dist, opts...)
	case memo.BottomUp:
		return BottomUp(dist, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}
