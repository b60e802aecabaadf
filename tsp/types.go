// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
)

// MaxCities bounds the table of n·2ⁿ states.
const MaxCities = 16

// ErrIncompleteGraph is returned when the distance matrix admits no
// Hamiltonian cycle through city 0. It wraps memo.ErrNoSolution.
var ErrIncompleteGraph = errors.Wrap(memo.ErrNoSolution, "tsp: incomplete distance matrix")

// load validates dist and returns it as a grid.
func load(dist [][]float64) (*grid.Grid[float64], error) {
	g, err := grid.New(dist)
	if err != nil {
		return nil, memo.Tag(errors.Wrap(err, "tsp"), memo.ErrInvalidInput)
	}
	n := g.Rows()
	if g.Cols() != n {
		return nil, memo.Invalid("tsp: distance matrix is %dx%d, want square", n, g.Cols())
	}
	if n > MaxCities {
		return nil, memo.Invalid("tsp: %d cities exceed MaxCities=%d", n, MaxCities)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := g.At(i, j)
			switch {
			case i == j && v != 0:
				return nil, memo.Invalid("tsp: dist[%d][%d]=%v; self-distance must be 0", i, j, v)
			case math.IsNaN(v) || v < 0 || math.IsInf(v, -1):
				return nil, memo.Invalid("tsp: dist[%d][%d]=%v must be >= 0 or +Inf", i, j, v)
			}
		}
	}

	return g, nil
}

func noTour() error {
	return errors.WithStack(ErrIncompleteGraph)
}
