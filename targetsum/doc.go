// SPDX-License-Identifier: MIT

// Package targetsum counts the ways to put a + or - sign in front of every
// number so that the signed sum equals a target.
//
// State (i, s): numbers before index i have been signed, with running sum s.
//
//	W(n, s) = 1 if s == target else 0
//	W(i, s) = W(i+1, s+nums[i]) + W(i+1, s-nums[i])
//
// A negative number offers the same two choices as its magnitude, so
// numbers are folded to |v|; with S = Σ|nums| every running sum lies in
// [-S, S]. That bound gives a dense (i, s+S) index for TopDown with
// memo.DenseCache; memo.SparseCache keys a map by the state instead. A
// target outside [-S, S] has no assignments and short-circuits to 0.
//
// The empty list has exactly one (empty) assignment, whose sum is 0.
package targetsum
