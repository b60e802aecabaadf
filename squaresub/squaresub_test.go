package squaresub_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dpkit/grid"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/katalvlaran/dpkit/squaresub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	T = true
	F = false
)

func TestSquareSub_Known(t *testing.T) {
	cases := []struct {
		name string
		m    [][]bool
		want int
	}{
		{"Nil", nil, 0},
		{"EmptyRow", [][]bool{{}}, 0},
		{"True", [][]bool{{T}}, 1},
		{"False", [][]bool{{F}}, 0},
		{"Two", [][]bool{{T, T, T, F}, {F, T, T, T}, {T, T, T, T}}, 2},
		{"Three", [][]bool{{T, T, T, T}, {F, T, T, T}, {T, T, T, T}}, 3},
		{"AllFalse", [][]bool{{F, F}, {F, F}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range memo.Strategies() {
				got, err := squaresub.Solve(s, tc.m)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got, s.String())
			}
		})
	}
}

func TestSquareSub_Ragged(t *testing.T) {
	for _, m := range [][][]bool{
		{{T, T}, {T}},
		{{}, {T}},
	} {
		for _, s := range memo.Strategies() {
			_, err := squaresub.Solve(s, m)
			assert.ErrorIs(t, err, memo.ErrInvalidInput, s.String())
			assert.ErrorIs(t, err, grid.ErrNonRectangular, s.String())
		}
	}
}

// TestSquareSub_InputNotRetained checks the solver reads a private copy.
func TestSquareSub_InputNotRetained(t *testing.T) {
	m := [][]bool{{T, T}, {T, T}}
	v, err := squaresub.BottomUp(m)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, [][]bool{{T, T}, {T, T}}, m)
}

func TestSquareSub_RandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		rows, cols := 1+rng.Intn(5), 1+rng.Intn(5)
		m := make([][]bool, rows)
		for i := range m {
			m[i] = make([]bool, cols)
			for j := range m[i] {
				m[i][j] = rng.Intn(5) > 0
			}
		}
		ex, err := squaresub.Exhaustive(m)
		require.NoError(t, err)
		td, err := squaresub.TopDown(m, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := squaresub.BottomUp(m)
		require.NoError(t, err)
		assert.Equal(t, ex, td, "trial %d", trial)
		assert.Equal(t, ex, bu, "trial %d", trial)
	}
}
