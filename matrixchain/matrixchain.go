// SPDX-License-Identifier: MIT

package matrixchain

import "github.com/katalvlaran/dpkit/memo"

// Dim is the shape of one matrix in the chain.
type Dim struct {
	Rows int `yaml:"rows" json:"rows"`
	Cols int `yaml:"cols" json:"cols"`
}

type span struct {
	i, j int
}

func validate(dims []Dim) error {
	if len(dims) == 0 {
		return memo.Invalid("matrixchain: empty chain")
	}
	for i, d := range dims {
		if d.Rows <= 0 || d.Cols <= 0 {
			return memo.Invalid("matrixchain: dims[%d]=%dx%d must be positive", i, d.Rows, d.Cols)
		}
		if i > 0 && dims[i-1].Cols != d.Rows {
			return memo.Invalid("matrixchain: dims[%d].Cols=%d does not match dims[%d].Rows=%d",
				i-1, dims[i-1].Cols, i, d.Rows)
		}
	}

	return nil
}

// cost of multiplying the product of dims[i..k] by the product of dims[k+1..j].
func cost(dims []Dim, i, k, j int) int {
	return dims[i].Rows * dims[k].Cols * dims[j].Cols
}

func recurrence(dims []Dim) memo.Recurrence[span, int] {
	return func(s span, sub func(span) int) int {
		best := memo.Minimize[int]()
		for k := s.i; k < s.j; k++ {
			best.Offer(sub(span{s.i, k}) + sub(span{k + 1, s.j}) + cost(dims, s.i, k, s.j))
		}

		return best.Or(0)
	}
}

// Exhaustive returns the minimum multiplication count by trying every split.
func Exhaustive(dims []Dim, opts ...memo.Option) (int, error) {
	if err := validate(dims); err != nil {
		return 0, err
	}

	return memo.NewExhaustive(recurrence(dims), memo.Gather(opts...)).Eval(span{0, len(dims) - 1})
}

// TopDown returns the minimum multiplication count by memoized recursion.
func TopDown(dims []Dim, opts ...memo.Option) (int, error) {
	if err := validate(dims); err != nil {
		return 0, err
	}
	n := len(dims)
	o := memo.Gather(opts...)
	cache := memo.NewCache[span, int](o, n*n, func(s span) int { return s.i*n + s.j })

	return memo.NewTopDown(recurrence(dims), cache, o).Eval(span{0, n - 1})
}

// BottomUp returns the minimum multiplication count by filling intervals in
// order of increasing gap j-i.
func BottomUp(dims []Dim, _ ...memo.Option) (int, error) {
	if err := validate(dims); err != nil {
		return 0, err
	}
	n := len(dims)
	t := memo.NewTable[int](n, n)
	for gap := 1; gap < n; gap++ {
		for i := 0; i+gap < n; i++ {
			j := i + gap
			best := memo.Minimize[int]()
			for k := i; k < j; k++ {
				best.Offer(t.At(i, k) + t.At(k+1, j) + cost(dims, i, k, j))
			}
			t.Set(i, j, best.Or(0))
		}
	}

	return t.At(0, n-1), nil
}

// Solve dispatches to the evaluator selected by s.
func Solve(s memo.Strategy, dims []Dim, opts ...memo.Option) (int, error) {
	switch s {
	case memo.Exhaustive:
		return Exhaustive(dims, opts...)
	case memo.TopDown:
		return TopDown(dims, opts...)
	case memo.BottomUp:
		return BottomUp(dims, opts...)
	default:
		return 0, memo.Unknown(s)
	}
}

// Chain builds a Dim chain from the boundary sizes p0×p1, p1×p2, ...
// It needs at least two sizes.
func Chain(sizes ...int) []Dim {
	if len(sizes) < 2 {
		return nil
	}
	dims := make([]Dim, len(sizes)-1)
	for i := range dims {
		dims[i] = Dim{Rows: sizes[i], Cols: sizes[i+1]}
	}

	return dims
}
