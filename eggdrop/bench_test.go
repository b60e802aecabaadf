package eggdrop_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/eggdrop"
	"github.com/katalvlaran/dpkit/memo"
)

func benchmarkEggDrop(b *testing.B, s memo.Strategy, eggs, floors int, opts ...memo.Option) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eggdrop.Solve(s, eggs, floors, opts...); err != nil {
			b.Fatalf("eggdrop failed: %v", err)
		}
	}
}

func BenchmarkEggDrop_Exhaustive(b *testing.B) { benchmarkEggDrop(b, memo.Exhaustive, 2, 14) }
func BenchmarkEggDrop_TopDown(b *testing.B) { benchmarkEggDrop(b, memo.TopDown, 4, 500) }
func BenchmarkEggDrop_BottomUp(b *testing.B) { benchmarkEggDrop(b, memo.BottomUp, 4, 500) }
