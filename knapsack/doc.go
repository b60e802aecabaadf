// SPDX-License-Identifier: MIT

// Package knapsack solves the 0/1 knapsack problem: choose a subset of
// items of maximum total value whose total weight does not exceed a capacity.
//
// State (i, c): best value obtainable from items[i:] with capacity c left.
//
//	K(n, c) = 0
//	K(i, c) = max(K(i+1, c), items[i].Value + K(i+1, c-items[i].Weight))   if it fits
//
// BottomUp keeps the full (n+1)×(W+1) table, or with memo.RollingArray
// only two capacity rows: O(W) memory.
package knapsack
