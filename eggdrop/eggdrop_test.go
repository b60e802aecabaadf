package eggdrop_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dpkit/eggdrop"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEggDrop_Known(t *testing.T) {
	cases := []struct {
		eggs, floors, want int
	}{
		{1, 1, 1},
		{1, 10, 10},
		{2, 10, 4},
		{2, 20, 6},
		{3, 10, 4},
		{5, 0, 0},
		{0, 0, 0},
		{7, 1, 1},
		{10, 5, 3},
	}
	for _, s := range memo.Strategies() {
		for _, mode := range []memo.MemoryMode{memo.FullTable, memo.RollingArray} {
			for _, tc := range cases {
				got, err := eggdrop.Solve(s, tc.eggs, tc.floors, memo.WithMemoryMode(mode))
				require.NoError(t, err)
				assert.Equal(t, tc.want, got, "%s/%s D(%d,%d)", s, mode, tc.eggs, tc.floors)
			}
		}
	}
}

// TestEggDrop_BaseCases checks D(e,0)=0, D(e,1)=1 and D(1,f)=f.
func TestEggDrop_BaseCases(t *testing.T) {
	for e := 1; e <= 6; e++ {
		v, err := eggdrop.TopDown(e, 0)
		require.NoError(t, err)
		assert.Zero(t, v)
		v, err = eggdrop.BottomUp(e, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	}
	for f := 0; f <= 30; f++ {
		v, err := eggdrop.BottomUp(1, f, memo.WithMemoryMode(memo.RollingArray))
		require.NoError(t, err)
		assert.Equal(t, f, v)
	}
}

func TestEggDrop_Errors(t *testing.T) {
	_, err := eggdrop.BottomUp(-1, 3)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)
	_, err = eggdrop.TopDown(2, -3)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)
	for _, s := range memo.Strategies() {
		_, err = eggdrop.Solve(s, 0, 4)
		assert.ErrorIs(t, err, memo.ErrNoSolution, s.String())
	}
}

func TestEggDrop_Equivalence(t *testing.T) {
	for e := 1; e <= 3; e++ {
		for f := 0; f <= 12; f++ {
			ex, err := eggdrop.Exhaustive(e, f)
			require.NoError(t, err)
			td, err := eggdrop.TopDown(e, f, memo.WithCache(memo.SparseCache))
			require.NoError(t, err)
			full, err := eggdrop.BottomUp(e, f)
			require.NoError(t, err)
			roll, err := eggdrop.BottomUp(e, f, memo.WithMemoryMode(memo.RollingArray))
			require.NoError(t, err)
			assert.Equal(t, ex, td, "D(%d,%d)", e, f)
			assert.Equal(t, ex, full, "D(%d,%d)", e, f)
			assert.Equal(t, ex, roll, "D(%d,%d)", e, f)
		}
	}
}

func TestEggDrop_Larger(t *testing.T) {
	td, err := eggdrop.TopDown(2, 100)
	require.NoError(t, err)
	bu, err := eggdrop.BottomUp(2, 100, memo.WithMemoryMode(memo.RollingArray))
	require.NoError(t, err)
	assert.Equal(t, 14, td)
	assert.Equal(t, 14, bu)

	v, err := eggdrop.BottomUp(3, 100)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestEggDrop_TooLarge(t *testing.T) {
	_, err := eggdrop.TopDown(2, math.MaxInt)
	assert.ErrorIs(t, err, memo.ErrTooLarge)
	for _, mode := range []memo.MemoryMode{memo.FullTable, memo.RollingArray} {
		_, err = eggdrop.BottomUp(2, math.MaxInt, memo.WithMemoryMode(mode))
		assert.ErrorIs(t, err, memo.ErrTooLarge)
	}
}
