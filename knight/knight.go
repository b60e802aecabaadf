// SPDX-License-Identifier: MIT

package knight

import (
	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
	"gonum.org/v1/gonum/mat"
)

// Solver computes knight probabilities on one fixed board.
type Solver struct {
	board grid.Board
	jumps [][2]int
}

type state struct {
	r, c, m int
}

// New returns a Solver for a height×width board. Both sides must be positive.
func New(height, width int) (*Solver, error) {
	if height <= 0 || width <= 0 {
		return nil, memo.Invalid("knight: board %dx%d must have positive sides", height, width)
	}
	if _, err := memo.Cells(height, width); err != nil {
		return nil, err
	}

	return &Solver{
		board: grid.Board{Height: height, Width: width},
		jumps: grid.KnightJumps(),
	}, nil
}

// Board returns the board dimensions.
func (s *Solver) Board() grid.Board { return s.board }

func (s *Solver) recurrence() memo.Recurrence[state, float64] {
	return func(st state, sub func(state) float64) float64 {
		if !s.board.InBounds(st.r, st.c) {
			return 0
		}
		if st.m == 0 {
			return 1
		}
		sum := 0.0
		for _, d := range s.jumps {
			sum += sub(state{st.r + d[0], st.c + d[1], st.m - 1})
		}

		return sum / float64(len(s.jumps))
	}
}

func validate(moves int) error {
	if moves < 0 {
		return memo.Invalid("knight: moves %d must be >= 0", moves)
	}

	return nil
}

// Exhaustive returns the probability by following every jump sequence.
func (s *Solver) Exhaustive(row, col, moves int, opts ...memo.Option) (float64, error) {
	if err := validate(moves); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(s.recurrence(), memo.Gather(opts...)).Eval(state{row, col, moves})
}

// TopDown returns the probability by memoized recursion. Off-board states
// are base cases and are not cached.
func (s *Solver) TopDown(row, col, moves int, opts ...memo.Option) (float64, error) {
	if err := validate(moves); err != nil {
		return 0, err
	}
	o := memo.Gather(opts...)
	b, area := s.board, s.board.Squares()
	size, err := o.CacheSize(moves+1, area)
	if err != nil {
		return 0, err
	}
	index := func(st state) int {
		if !b.InBounds(st.r, st.c) {
			return -1
		}
		return st.m*area + b.Index(st.r, st.c)
	}
	cache := memo.NewCache[state, float64](o, size, index)

	return memo.NewTopDown(s.recurrence(), cache, o).Eval(state{row, col, moves})
}

// BottomUp returns the probability by computing whole board layers for
// 0, 1, ..., moves remaining moves.
func (s *Solver) BottomUp(row, col, moves int, opts ...memo.Option) (float64, error) {
	if err := validate(moves); err != nil {
		return 0, err
	}
	if !s.board.InBounds(row, col) {
		return 0, nil
	}
	o := memo.Gather(opts...)
	if err := o.TableSize(moves+1, s.board.Squares()); err != nil {
		return 0, err
	}

	if o.Memory == memo.RollingArray {
		layer, err := s.Layer(moves)
		if err != nil {
			return 0, err
		}

		return layer.At(row, col), nil
	}

	layers := make([]*mat.Dense, moves+1)
	layers[0] = s.base()
	for m := 1; m <= moves; m++ {
		layers[m] = mat.NewDense(s.board.Height, s.board.Width, nil)
		s.step(layers[m-1], layers[m])
	}

	return layers[moves].At(row, col), nil
}

// Probability is BottomUp with default options.
func (s *Solver) Probability(row, col, moves int) (float64, error) {
	return s.BottomUp(row, col, moves)
}

// Layer returns the full probability board for the given number of moves:
// entry (r, c) is P(r, c, moves). It keeps two layers at a time.
func (s *Solver) Layer(moves int) (*mat.Dense, error) {
	if err := validate(moves); err != nil {
		return nil, err
	}
	prev, curr := s.base(), mat.NewDense(s.board.Height, s.board.Width, nil)
	for m := 1; m <= moves; m++ {
		s.step(prev, curr)
		prev, curr = curr, prev
	}

	return prev, nil
}

// base is the zero-moves layer: every on-board square is 1.
func (s *Solver) base() *mat.Dense {
	h, w := s.board.Height, s.board.Width
	data := make([]float64, h*w)
	for i := range data {
		data[i] = 1
	}

	return mat.NewDense(h, w, data)
}

// step fills next from prev, summing jumps in the same order as the recurrence.
func (s *Solver) step(prev, next *mat.Dense) {
	for r := 0; r < s.board.Height; r++ {
		for c := 0; c < s.board.Width; c++ {
			sum := 0.0
			for _, d := range s.jumps {
				nr, nc := r+d[0], c+d[1]
				if s.board.InBounds(nr, nc) {
					sum += prev.At(nr, nc)
				}
			}
			next.Set(r, c, sum/float64(len(s.jumps)))
		}
	}
}

// Solve dispatches to the evaluator selected by st.
func (s *Solver) Solve(st memo.Strategy, row, col, moves int, opts ...memo.Option) (float64, error) {
	switch st {
	case memo.Exhaustive:
		return s.Exhaustive(row, col, moves, opts...)
	case memo.TopDown:
		return s.TopDown(row, col, moves, opts...)
	case memo.BottomUp:
		return s.BottomUp(row, col, moves, opts...)
	default:
		return 0, memo.Unknown(st)
	}
}
