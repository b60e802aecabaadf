// SPDX-License-Identifier: MIT

// Package matrixpath finds the largest product along a path from the
// top-left to the bottom-right cell of an integer matrix, moving only down
// or right.
//
// A negative cell can turn the smallest product of a suffix into the
// largest, so every state carries both extremes as a memo.Pair:
//
//	P(R-1, C-1)   = {v, v}
//	P(i, j).Max   = max over successors s of max(v·s.Max, v·s.Min)
//	P(i, j).Min   = min over successors s of min(v·s.Max, v·s.Min)
//
// where v is the value at (i, j) and the successors are the cells below and
// to the right that exist. Products are not checked for int overflow.
//
// BottomUp sweeps rows from the bottom; memo.RollingArray keeps one row
// below the current one.
package matrixpath
