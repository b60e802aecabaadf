package rodcutting_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/memo"
	"github.com/katalvlaran/dpkit/rodcutting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prices = []int{1, 5, 8, 9, 10, 10}

func TestRodCutting_Known(t *testing.T) {
	cases := []struct {
		prices []int
		length int
		want   int
	}{
		{nil, 0, 0},
		{prices, 0, 0},
		{prices, 1, 1},
		{prices, 4, 10},
		{prices, 5, 13},
		{prices, 6, 16},
		{[]int{3, 5, 8, 9, 10, 17, 17, 20}, 8, 24},
	}
	for _, s := range memo.Strategies() {
		for _, tc := range cases {
			got, err := rodcutting.Solve(s, tc.prices, tc.length)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s %v/%d", s, tc.prices, tc.length)
		}
	}
}

func TestRodCutting_Errors(t *testing.T) {
	_, err := rodcutting.BottomUp(prices, 7)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)
	_, err = rodcutting.TopDown(prices, -1)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)
	_, err = rodcutting.Exhaustive([]int{1, -2}, 2)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)
}

// TestRodCutting_Monotone checks R is non-decreasing in length.
func TestRodCutting_Monotone(t *testing.T) {
	table := []int{2, 3, 7, 8, 9, 12, 12, 15, 20, 21, 21, 22}
	prev := 0
	for n := 0; n <= len(table); n++ {
		ex, err := rodcutting.Exhaustive(table, n)
		require.NoError(t, err)
		td, err := rodcutting.TopDown(table, n, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := rodcutting.BottomUp(table, n)
		require.NoError(t, err)
		assert.Equal(t, ex, td, "n=%d", n)
		assert.Equal(t, ex, bu, "n=%d", n)
		assert.GreaterOrEqual(t, bu, prev, "n=%d", n)
		prev = bu
	}
}
