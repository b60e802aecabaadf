// SPDX-License-Identifier: MIT

// Package lis computes the length of the longest strictly increasing
// subsequence of an integer sequence.
//
// State i: longest increasing subsequence that starts at arr[i].
//
//	L(n) = 0
//	L(i) = 1 + max{ L(j) : j > i, arr[j] > arr[i] }   (max of nothing is 0)
//
// The answer is the largest L(i) over all start indices; an empty sequence
// has length 0. TopDown evaluates every root against one shared cache.
// TopDown and BottomUp run in O(n²) time, O(n) memory.
package lis
