// SPDX-License-Identifier: MIT

// Package coinchange finds the fewest coins that sum exactly to an amount.
//
// A Solver is built once for a coin system and then answers any number of
// amounts with any strategy. The recurrence is
//
//	C(0) = 0
//	C(n) = 1 + min{ C(n-c) : c ∈ coins, c ≤ n }
//
// An amount that no combination reaches has no minimum. The solvers track
// that case explicitly (memo.Optimum) and report memo.ErrNoSolution; no
// "infinite" sentinel is ever incremented.
//
// Complexity (n = amount, k = distinct coins):
//
//   - Exhaustive: exponential in n.
//   - TopDown, BottomUp: O(n·k) time, O(n) memory.
package coinchange
