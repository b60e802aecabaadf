package lis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dpkit/lis"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLIS_Known(t *testing.T) {
	cases := []struct {
		arr  []int
		want int
	}{
		{nil, 0},
		{[]int{1}, 1},
		{[]int{5, 4, 3, 2, 1}, 1},
		{[]int{1, 4, 2, 3, 5}, 4},
		{[]int{10, 22, 9, 33, 21, 50, 41, 60}, 5},
		{[]int{3, 3, 3}, 1},
	}
	for _, s := range memo.Strategies() {
		for _, tc := range cases {
			got, err := lis.Solve(s, tc.arr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s %v", s, tc.arr)
		}
	}
}

// TestLIS_SharedCache checks that one cache serves every start index:
// each index is expanded exactly once.
func TestLIS_SharedCache(t *testing.T) {
	var st memo.Stats
	arr := []int{10, 22, 9, 33, 21, 50, 41, 60}
	_, err := lis.TopDown(arr, memo.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, len(arr), st.Expansions)
}

func TestLIS_RandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 40; trial++ {
		arr := make([]int, rng.Intn(14))
		for i := range arr {
			arr[i] = rng.Intn(20) - 5
		}
		ex, err := lis.Exhaustive(arr)
		require.NoError(t, err)
		td, err := lis.TopDown(arr, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := lis.BottomUp(arr)
		require.NoError(t, err)
		assert.Equal(t, ex, td, "%v", arr)
		assert.Equal(t, ex, bu, "%v", arr)
	}
}

func TestLIS_DepthGuard(t *testing.T) {
	arr := make([]int, 500)
	for i := range arr {
		arr[i] = i
	}
	_, err := lis.TopDown(arr, memo.WithMaxDepth(100))
	assert.ErrorIs(t, err, memo.ErrDepthExceeded)

	v, err := lis.BottomUp(arr)
	require.NoError(t, err)
	assert.Equal(t, 500, v)
}
