// SPDX-License-Identifier: MIT

// Package dtw computes the Dynamic Time Warping distance between two numeric
// series with the three dpkit strategies.
//
// DTW aligns two series that may run at different speeds by warping the
// time axis. Over prefix lengths (i, j):
//
//	D(0, 0) = 0
//	D(i, 0) = D(0, j) = +∞                       (i, j > 0)
//	D(i, j) = +∞                                 if Window > 0 and |i−j| > Window
//	D(i, j) = |a[i−1] − b[j−1]| + min(D(i−1, j) + p, D(i, j−1) + p, D(i−1, j−1))
//
// where p is Params.SlopePenalty, charged for every step that stretches one
// series against the other. The distance is D(len(a), len(b)); an infinite
// distance (the band excludes the end cell) is reported as memo.ErrNoSolution.
//
// Performance:
//
//   - Exhaustive: O(Delannoy(n, m)) calls, for tiny series only.
//   - TopDown and BottomUp: O(n·m) time.
//   - Memory: O(n·m), or O(m) with BottomUp and memo.RollingArray.
//
// Path recovers the optimal warping path from a full table.
package dtw
