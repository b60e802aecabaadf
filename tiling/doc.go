// SPDX-License-Identifier: MIT

// Package tiling counts the ways to tile a 2×n floor with 2×1 tiles.
//
// A vertical tile leaves a 2×(n-1) floor, two stacked horizontal tiles a
// 2×(n-2) floor, so T(n) = T(n-1) + T(n-2) with T(0) = T(1) = 1.
// T(n) equals Fibonacci(n+1); MaxN = 91 is the last value that fits int64.
//
// BottomUp honours memo.RollingArray (two scalars instead of a table).
package tiling
