package dtw_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/dtw"
	"github.com/katalvlaran/dpkit/memo"
)

func benchmarkDTW(b *testing.B, n int, s memo.Strategy, opts ...memo.Option) {
	x := make([]float64, n)
	y := make([]float64, n+n/10)
	for i := range x {
		x[i] = float64(i % 17)
	}
	for j := range y {
		y[j] = float64(j % 13)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Solve(s, x, y, dtw.Params{Window: n / 4}, opts...); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

func BenchmarkDTW_BottomUpFull(b *testing.B) { benchmarkDTW(b, 500, memo.BottomUp) }

func BenchmarkDTW_BottomUpRolling(b *testing.B) {
	benchmarkDTW(b, 500, memo.BottomUp, memo.WithMemoryMode(memo.RollingArray))
}

func BenchmarkDTW_TopDown(b *testing.B) { benchmarkDTW(b, 200, memo.TopDown) }
