package matrixchain_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dpkit/matrixchain"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixChain_Known(t *testing.T) {
	cases := []struct {
		name string
		dims []matrixchain.Dim
		want int
	}{
		{"Single", matrixchain.Chain(40, 20), 0},
		{"Pair", matrixchain.Chain(10, 20, 30), 6000},
		{"Four", matrixchain.Chain(40, 20, 30, 10, 30), 26000},
		{"FourB", matrixchain.Chain(10, 20, 30, 40, 30), 30000},
		{"Classic", matrixchain.Chain(30, 35, 15, 5, 10, 20, 25), 15125},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range memo.Strategies() {
				got, err := matrixchain.Solve(s, tc.dims)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got, s.String())
			}
		})
	}
}

func TestMatrixChain_Errors(t *testing.T) {
	_, err := matrixchain.BottomUp(nil)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)

	broken := []matrixchain.Dim{{Rows: 2, Cols: 3}, {Rows: 4, Cols: 5}}
	_, err = matrixchain.TopDown(broken)
	assert.ErrorIs(t, err, memo.ErrInvalidInput)

	_, err = matrixchain.Exhaustive([]matrixchain.Dim{{Rows: 0, Cols: 3}})
	assert.ErrorIs(t, err, memo.ErrInvalidInput)

	assert.Nil(t, matrixchain.Chain(5))
}

func TestMatrixChain_RandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		sizes := make([]int, 2+rng.Intn(8))
		for i := range sizes {
			sizes[i] = 1 + rng.Intn(40)
		}
		dims := matrixchain.Chain(sizes...)

		ex, err := matrixchain.Exhaustive(dims)
		require.NoError(t, err)
		td, err := matrixchain.TopDown(dims, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		bu, err := matrixchain.BottomUp(dims)
		require.NoError(t, err)
		assert.Equal(t, ex, td, "sizes %v", sizes)
		assert.Equal(t, ex, bu, "sizes %v", sizes)
	}
}
