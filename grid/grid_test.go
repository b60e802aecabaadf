package grid_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures the grid does not share storage with its input.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]bool{{true, false}, {false, true}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = false
	in[1][1] = false
	assert.True(t, g.At(0, 0))
	assert.True(t, g.At(1, 1))
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, grid.Board{Height: 2, Width: 2}, g.Board())
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "(%d,%d)", rc[0], rc[1])
	}
}

// TestBoard covers bounds, indexing and degenerate sizes.
func TestBoard(t *testing.T) {
	b := grid.Board{Height: 3, Width: 4}
	assert.Equal(t, 12, b.Squares())
	assert.Equal(t, 7, b.Index(1, 3))
	assert.True(t, b.InBounds(2, 3))
	assert.False(t, b.InBounds(3, 0))

	assert.Zero(t, grid.Board{Height: 0, Width: 5}.Squares())
	assert.False(t, grid.Board{}.InBounds(0, 0))
}

// TestKnightJumps checks uniqueness, the L-shape and that callers get a copy.
func TestKnightJumps(t *testing.T) {
	jumps := grid.KnightJumps()
	assert.Len(t, jumps, 8)
	seen := make(map[[2]int]bool)
	for _, d := range jumps {
		assert.False(t, seen[d], "duplicate jump %v", d)
		seen[d] = true
		a, b := abs(d[0]), abs(d[1])
		assert.True(t, (a == 1 && b == 2) || (a == 2 && b == 1), "not a knight jump: %v", d)
	}

	jumps[0] = [2]int{0, 0}
	assert.NotEqual(t, [2]int{0, 0}, grid.KnightJumps()[0])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
