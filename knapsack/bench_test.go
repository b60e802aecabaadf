package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/knapsack"
	"github.com/katalvlaran/dpkit/memo"
)

func benchItems(n int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{Weight: 1 + i*7%23, Value: 3 + i*11%31}
	}

	return items
}

func benchmarkKnapsack(b *testing.B, s memo.Strategy, opts ...memo.Option) {
	items := benchItems(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Solve(s, items, 1000, opts...); err != nil {
			b.Fatalf("knapsack failed: %v", err)
		}
	}
}

func BenchmarkKnapsack_TopDownDense(b *testing.B) { benchmarkKnapsack(b, memo.TopDown) }

func BenchmarkKnapsack_TopDownSparse(b *testing.B) {
	benchmarkKnapsack(b, memo.TopDown, memo.WithCache(memo.SparseCache))
}

func BenchmarkKnapsack_BottomUpFull(b *testing.B) { benchmarkKnapsack(b, memo.BottomUp) }

func BenchmarkKnapsack_BottomUpRolling(b *testing.B) {
	benchmarkKnapsack(b, memo.BottomUp, memo.WithMemoryMode(memo.RollingArray))
}
