// SPDX-License-Identifier: MIT

// Package knight computes the probability that a knight making uniformly
// random moves is still on a Height×Width board after a number of moves.
//
// State (r, c, m): knight on square (r, c) with m moves left.
//
//	P(r, c, m) = 0                               (r, c) off the board
//	P(r, c, 0) = 1                               on the board
//	P(r, c, m) = ⅛ Σ P(r+dr, c+dc, m-1)          over the 8 knight jumps
//
// Once off the board the knight stays off: an off-board square is 0 for any
// number of remaining moves.
//
// BottomUp stores one gonum mat.Dense per move layer. Every layer is a
// separately allocated matrix, so no two layers (or rows) share storage.
// memo.RollingArray keeps two layers; memory O(H·W) instead of O(m·H·W).
package knight
