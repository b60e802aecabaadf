package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dpkit/dtw"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seqA = []float64{1, 3, 4, 9, 8, 2}
	seqB = []float64{1, 6, 2, 3, 0, 9}
)

// TestDTW_Known checks hand-computed distances under every strategy and
// memory mode.
func TestDTW_Known(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		p    dtw.Params
		want float64
	}{
		{"Identical", []float64{0, 1, 2}, []float64{0, 1, 2}, dtw.Params{}, 0},
		{"Stretched", []float64{1, 2, 3}, []float64{1, 2, 2, 3}, dtw.Params{}, 0},
		{"StretchedPenalty", []float64{1, 2, 3}, []float64{1, 2, 2, 3}, dtw.Params{SlopePenalty: 0.5}, 0.5},
		{"Offset", []float64{0, 0, 0}, []float64{1, 1, 1}, dtw.Params{}, 3},
		{"Single", []float64{5}, []float64{1, 2, 3}, dtw.Params{}, 9},
		{"Band", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4, 5, 6}, dtw.Params{Window: 2}, 3},
		{"Mixed", seqA, seqB, dtw.Params{}, 16},
		{"MixedBandPenalty", seqA, seqB, dtw.Params{Window: 1, SlopePenalty: 0.5}, 23},
		{"QuarterPenalty", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 2, 2}, dtw.Params{SlopePenalty: 0.25}, 0.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range memo.Strategies() {
				for _, mode := range []memo.MemoryMode{memo.FullTable, memo.RollingArray} {
					got, err := dtw.Solve(s, tc.a, tc.b, tc.p, memo.WithMemoryMode(mode))
					require.NoError(t, err, "%s/%s", s, mode)
					assert.Equal(t, tc.want, got, "%s/%s", s, mode)
				}
			}
		})
	}
}

// TestDTW_BandTooNarrow verifies an unreachable end cell is ErrNoSolution.
func TestDTW_BandTooNarrow(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 2, 3, 4, 5, 6}
	for _, s := range memo.Strategies() {
		_, err := dtw.Solve(s, a, b, dtw.Params{Window: 1})
		assert.ErrorIs(t, err, memo.ErrNoSolution, s.String())
	}
	_, _, err := dtw.Path(a, b, dtw.Params{Window: 1})
	assert.ErrorIs(t, err, memo.ErrNoSolution)
}

func TestDTW_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		p    dtw.Params
	}{
		{"EmptyA", nil, []float64{1}, dtw.Params{}},
		{"EmptyB", []float64{1}, []float64{}, dtw.Params{}},
		{"NegativeWindow", []float64{1}, []float64{1}, dtw.Params{Window: -1}},
		{"NegativePenalty", []float64{1}, []float64{1}, dtw.Params{SlopePenalty: -0.1}},
		{"NaN", []float64{1, math.NaN()}, []float64{1}, dtw.Params{}},
		{"Inf", []float64{1}, []float64{math.Inf(-1)}, dtw.Params{}},
	}
	for _, tc := range cases {
		for _, s := range memo.Strategies() {
			_, err := dtw.Solve(s, tc.a, tc.b, tc.p)
			assert.ErrorIs(t, err, memo.ErrInvalidInput, "%s/%s", tc.name, s)
		}
	}

	_, err := dtw.BottomUp(nil, []float64{1}, dtw.Params{})
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)

	_, err = dtw.Solve(memo.Strategy(9), seqA, seqB, dtw.Params{})
	assert.ErrorIs(t, err, memo.ErrUnknownStrategy)
}

// TestDTW_Path checks the recovered alignment and its endpoints.
func TestDTW_Path(t *testing.T) {
	d, path, err := dtw.Path([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, dtw.Params{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)

	_, path, err = dtw.Path([]float64{5}, []float64{1, 2, 3}, dtw.Params{})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}}, path)

	d, path, err = dtw.Path([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4, 5, 6}, dtw.Params{Window: 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {3, 4}, {3, 5}}, path)
}

// TestDTW_PathCostMatchesDistance re-prices random paths: the sum of cell
// costs plus penalties along the path must equal the distance.
func TestDTW_PathCostMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		a := make([]float64, 1+rng.Intn(12))
		b := make([]float64, 1+rng.Intn(12))
		for i := range a {
			a[i] = float64(rng.Intn(10))
		}
		for j := range b {
			b[j] = float64(rng.Intn(10))
		}
		p := dtw.Params{SlopePenalty: float64(rng.Intn(3)) / 2}

		d, path, err := dtw.Path(a, b, p)
		require.NoError(t, err)
		assert.Equal(t, [2]int{0, 0}, path[0])
		assert.Equal(t, [2]int{len(a) - 1, len(b) - 1}, path[len(path)-1])

		cost := 0.0
		for k, c := range path {
			cost += math.Abs(a[c[0]] - b[c[1]])
			if k > 0 && (c[0] == path[k-1][0] || c[1] == path[k-1][1]) {
				cost += p.SlopePenalty
			}
		}
		assert.InDelta(t, d, cost, 1e-9, "trial %d", trial)

		td, err := dtw.TopDown(a, b, p, memo.WithCache(memo.SparseCache))
		require.NoError(t, err)
		assert.Equal(t, d, td)
	}
}

// TestDTW_TopDownExpansions verifies each reachable cell is expanded once.
func TestDTW_TopDownExpansions(t *testing.T) {
	var st memo.Stats
	_, err := dtw.TopDown(seqA, seqB, dtw.Params{}, memo.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, (len(seqA)+1)*(len(seqB)+1), st.Expansions)
}
