// SPDX-License-Identifier: MIT

// Package squaresub finds the side of the largest all-true square inside a
// boolean matrix.
//
// State (i, j): side of the largest all-true square whose top-left corner
// is (i, j).
//
//	S(i, j) = 0                                            off the grid or false
//	S(i, j) = 1 + min(S(i+1, j), S(i, j+1), S(i+1, j+1))   otherwise
//
// The answer is the largest S over all cells; an empty matrix has answer 0.
// BottomUp uses a zero-padded (rows+1)×(cols+1) table whose rows are
// independent storage.
package squaresub
