// SPDX-License-Identifier: MIT

package catalog

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/coinchange"
	"github.com/katalvlaran/dpkit/combinations"
	"github.com/katalvlaran/dpkit/dtw"
	"github.com/katalvlaran/dpkit/eggdrop"
	"github.com/katalvlaran/dpkit/fibonacci"
	"github.com/katalvlaran/dpkit/knapsack"
	"github.com/katalvlaran/dpkit/knight"
	"github.com/katalvlaran/dpkit/lis"
	"github.com/katalvlaran/dpkit/matrixchain"
	"github.com/katalvlaran/dpkit/matrixpath"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/katalvlaran/dpkit/rodcutting"
	"github.com/katalvlaran/dpkit/squaresub"
	"github.com/katalvlaran/dpkit/targetsum"
	"github.com/katalvlaran/dpkit/tiling"
	"github.com/katalvlaran/dpkit/tsp"
)

// Problem is the registered name of a problem.
type Problem string

// Registered problems.
const (
	Fibonacci         Problem = "fibonacci"
	ArrayCombinations Problem = "array-combinations"
	CoinChange        Problem = "coin-change"
	Knapsack          Problem = "knapsack"
	EggDrop           Problem = "egg-drop"
	RodCutting        Problem = "rod-cutting"
	FloorTiling       Problem = "floor-tiling"
	MatrixChain       Problem = "matrix-chain"
	LIS               Problem = "lis"
	SquareSubmatrix   Problem = "square-submatrix"
	KnightProbability Problem = "knight-probability"
	MatrixPath        Problem = "matrix-path"
	TargetSum         Problem = "target-sum"
	TimeWarp          Problem = "time-warp"
	Salesman          Problem = "travelling-salesman"
)

type solveFunc func(inst Instance, s memo.Strategy, opts []memo.Option) (Value, error)

type entry struct {
	summary string
	params  string
	solve   solveFunc
}

func ints(f func() (int, error)) (Value, error) {
	v, err := f()
	return IntValue(v), err
}

var registry = map[Problem]entry{
	Fibonacci: {
		summary: "n-th Fibonacci number",
		params:  "n",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return fibonacci.Solve(s, in.N, o...) })
		},
	},
	ArrayCombinations: {
		summary: "number of include/exclude selections of an array (2^len)",
		params:  "array",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return combinations.Solve(s, in.Array, o...) })
		},
	},
	CoinChange: {
		summary: "fewest coins summing exactly to an amount",
		params:  "coins, amount",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			cs, err := coinchange.New(in.Coins)
			if err != nil {
				return Value{}, err
			}
			return ints(func() (int, error) { return cs.Solve(s, in.Amount, o...) })
		},
	},
	Knapsack: {
		summary: "best 0/1 knapsack value within a capacity",
		params:  "items, capacity",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return knapsack.Solve(s, in.Items, in.Capacity, o...) })
		},
	},
	EggDrop: {
		summary: "worst-case drops to find the critical floor",
		params:  "eggs, floors",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return eggdrop.Solve(s, in.Eggs, in.Floors, o...) })
		},
	},
	RodCutting: {
		summary: "best revenue from cutting a rod",
		params:  "prices, length",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return rodcutting.Solve(s, in.Prices, in.Length, o...) })
		},
	},
	FloorTiling: {
		summary: "ways to tile a 2×n floor with dominoes",
		params:  "n",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return tiling.Solve(s, in.N, o...) })
		},
	},
	MatrixChain: {
		summary: "fewest scalar multiplications for a matrix chain",
		params:  "dims",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return matrixchain.Solve(s, in.Dims, o...) })
		},
	},
	LIS: {
		summary: "length of the longest strictly increasing subsequence",
		params:  "array",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return lis.Solve(s, in.Array, o...) })
		},
	},
	SquareSubmatrix: {
		summary: "side of the largest all-true square",
		params:  "cells",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return squaresub.Solve(s, in.Cells, o...) })
		},
	},
	KnightProbability: {
		summary: "probability a random knight stays on the board",
		params:  "height, width, row, col, moves",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			ks, err := knight.New(in.Height, in.Width)
			if err != nil {
				return Value{}, err
			}
			p, err := ks.Solve(s, in.Row, in.Col, in.Moves, o...)
			return FloatValue(p), err
		},
	},
	MatrixPath: {
		summary: "largest product on a down/right path through a matrix",
		params:  "matrix",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return matrixpath.Solve(s, in.Matrix, o...) })
		},
	},
	TargetSum: {
		summary: "ways to sign numbers so they sum to a target",
		params:  "array, target",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			return ints(func() (int, error) { return targetsum.Solve(s, in.Array, in.Target, o...) })
		},
	},
	TimeWarp: {
		summary: "dynamic time warping distance between two series",
		params:  "a, b, warp",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			d, err := dtw.Solve(s, in.A, in.B, in.Warp, o...)
			return FloatValue(d), err
		},
	},
	Salesman: {
		summary: "shortest round trip through every city from city 0",
		params:  "dist",
		solve: func(in Instance, s memo.Strategy, o []memo.Option) (Value, error) {
			c, err := tsp.Solve(s, in.Dist, o...)
			return FloatValue(c), err
		},
	},
}

// Problems returns every registered problem in name order.
func Problems() []Problem {
	out := make([]Problem, 0, len(registry))
	for p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Describe returns a one-line summary of p and the Instance fields it reads.
func Describe(p Problem) (summary, params string, err error) {
	e, ok := registry[p]
	if !ok {
		return "", "", errors.Wrapf(ErrUnknownProblem, "%q", string(p))
	}

	return e.summary, e.params, nil
}

// Evaluate runs inst with strategy s. Errors from the solver are returned
// wrapped with the instance name and remain matchable with errors.Is.
func Evaluate(inst Instance, s memo.Strategy, opts ...memo.Option) (Value, error) {
	e, ok := registry[inst.Problem]
	if !ok {
		return Value{}, errors.Wrapf(ErrUnknownProblem, "instance %s: %q", inst.Label(), string(inst.Problem))
	}
	v, err := e.solve(inst, s, opts)
	if err != nil {
		return Value{}, errors.Wrapf(err, "instance %s (%s)", inst.Label(), s)
	}

	return v, nil
}
