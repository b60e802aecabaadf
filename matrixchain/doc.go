// SPDX-License-Identifier: MIT

// Package matrixchain finds the cheapest parenthesisation of a chain of
// matrix products, counting one scalar multiplication per inner-product term.
//
// State (i, j): cheapest way to multiply dims[i..j].
//
//	M(i, i) = 0
//	M(i, j) = min_{i≤k<j} M(i, k) + M(k+1, j) + rows(i)·cols(k)·cols(j)
//
// BottomUp fills the upper triangle by increasing interval width (gap),
// so every sub-interval is final before it is read.
// TopDown and BottomUp run in O(n³) time and O(n²) memory.
package matrixchain
