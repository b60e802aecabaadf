// SPDX-License-Identifier: MIT

// Package eggdrop computes the worst-case number of drops needed to find the
// highest safe floor with a given number of eggs.
//
// State (e, f): e eggs, f candidate floors.
//
//	D(e, 0) = 0, D(e, 1) = 1
//	D(1, f) = f                                   (linear search)
//	D(e, f) = 1 + min_{1≤k≤f} max(D(e-1, k-1), D(e, f-k))
//
// Zero eggs cannot test any floor: D(0, f>0) is reported as
// memo.ErrNoSolution. More eggs than floors never help, so e is clamped to f
// before evaluation.
//
// BottomUp fills one row per egg count; memo.RollingArray keeps two rows.
// Time O(e·f²) for TopDown and BottomUp.
package eggdrop
