package fibonacci_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/fibonacci"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFibonacci_Known checks worked values under every strategy and memory mode.
func TestFibonacci_Known(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 5: 5, 10: 55, 20: 6765}
	for _, s := range memo.Strategies() {
		for _, mode := range []memo.MemoryMode{memo.FullTable, memo.RollingArray} {
			for n, want := range cases {
				got, err := fibonacci.Solve(s, n, memo.WithMemoryMode(mode))
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s/%s F(%d)", s, mode, n)
			}
		}
	}
}

// TestFibonacci_Equivalence compares all strategies on 0..25.
func TestFibonacci_Equivalence(t *testing.T) {
	for n := 0; n <= 25; n++ {
		ex, err := fibonacci.Exhaustive(n)
		require.NoError(t, err)
		td, err := fibonacci.TopDown(n, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := fibonacci.BottomUp(n, memo.WithMemoryMode(memo.RollingArray))
		require.NoError(t, err)
		assert.Equal(t, ex, td, "n=%d", n)
		assert.Equal(t, ex, bu, "n=%d", n)
	}
}

// TestFibonacci_Limits covers the int64 boundary and invalid input.
func TestFibonacci_Limits(t *testing.T) {
	v, err := fibonacci.BottomUp(fibonacci.MaxN)
	require.NoError(t, err)
	assert.Equal(t, 7540113804746346429, v)

	td, err := fibonacci.TopDown(fibonacci.MaxN)
	require.NoError(t, err)
	assert.Equal(t, v, td)

	_, err = fibonacci.BottomUp(fibonacci.MaxN + 1)
	assert.ErrorIs(t, err, memo.ErrOverflow)

	_, err = fibonacci.TopDown(-1)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)

	_, err = fibonacci.Solve(memo.Strategy(42), 3)
	assert.ErrorIs(t, err, memo.ErrUnknownStrategy)
}

// TestFibonacci_TopDownExpandsOnce checks n+1 expansions for F(n).
func TestFibonacci_TopDownExpandsOnce(t *testing.T) {
	var st memo.Stats
	_, err := fibonacci.TopDown(60, memo.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 61, st.Expansions)
	assert.Equal(t, 60, st.MaxDepth)
}

// TestFibonacci_DepthGuard shows the recursive strategies failing where
// tabulation does not.
func TestFibonacci_DepthGuard(t *testing.T) {
	_, err := fibonacci.TopDown(80, memo.WithMaxDepth(10))
	assert.ErrorIs(t, err, memo.ErrDepthExceeded)

	v, err := fibonacci.BottomUp(80, memo.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, 23416728348467685, v)
}
