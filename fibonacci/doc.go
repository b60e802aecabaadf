// SPDX-License-Identifier: MIT

// Package fibonacci computes Fibonacci numbers F(0)=0, F(1)=1,
// F(n)=F(n-1)+F(n-2) with each of the three dpkit strategies.
//
// Strategies:
//
//   - Exhaustive: O(φⁿ) time, O(n) stack.
//   - TopDown:    O(n) time and memory, O(n) stack.
//   - BottomUp:   O(n) time; O(n) memory with memo.FullTable,
//     O(1) with memo.RollingArray (two scalars).
//
// F(92) is the largest Fibonacci number that fits int64; larger n yield
// memo.ErrOverflow instead of a wrapped value.
package fibonacci
