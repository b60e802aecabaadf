package combinations_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/combinations"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations_Known(t *testing.T) {
	cases := []struct {
		arr  []int
		want int
	}{
		{nil, 1},
		{[]int{}, 1},
		{[]int{1}, 2},
		{[]int{1, 1}, 4},
		{[]int{1, 2, 3, 4, 5}, 32},
	}
	for _, s := range memo.Strategies() {
		for _, tc := range cases {
			got, err := combinations.Solve(s, tc.arr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s %v", s, tc.arr)
		}
	}
}

// TestCombinations_ElementTypeIrrelevant checks only the length matters.
func TestCombinations_ElementTypeIrrelevant(t *testing.T) {
	got, err := combinations.TopDown([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestCombinations_Equivalence(t *testing.T) {
	for n := 0; n <= 18; n++ {
		arr := make([]int, n)
		ex, err := combinations.Exhaustive(arr)
		require.NoError(t, err)
		td, err := combinations.TopDown(arr, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := combinations.BottomUp(arr, memo.WithMemoryMode(memo.RollingArray))
		require.NoError(t, err)
		assert.Equal(t, 1<<n, ex)
		assert.Equal(t, ex, td)
		assert.Equal(t, ex, bu)
	}
}

func TestCombinations_Overflow(t *testing.T) {
	v, err := combinations.BottomUp(make([]byte, combinations.MaxLen))
	require.NoError(t, err)
	assert.Equal(t, 1<<62, v)

	_, err = combinations.TopDown(make([]byte, combinations.MaxLen+1))
	assert.ErrorIs(t, err, memo.ErrOverflow)
}
