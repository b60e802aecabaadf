// SPDX-License-Identifier: MIT

// Package dpkit is a workbench for dynamic programming: fifteen classic
// problems, each solved three ways so the strategies can be compared on
// equal inputs.
//
// Strategies:
//
//	exhaustive  plain recursion over the recurrence, exponential in general
//	top-down    the same recursion with a cache (memoization)
//	bottom-up   iterative tabulation in dependency order
//
// Layout:
//
//	memo/        recurrence evaluators, caches, tables, options and errors
//	grid/        rectangular grids and board geometry for the 2-D problems
//	fibonacci/ tiling/ combinations/ coinchange/ knapsack/ eggdrop/
//	rodcutting/ matrixchain/ lis/ squaresub/ knight/ matrixpath/ targetsum/ dtw/ tsp/
//	             one package per problem, each exporting Exhaustive,
//	             TopDown, BottomUp and Solve
//	catalog/     YAML problem instances, a registry and cross-strategy Verify
//	batch/       bounded-concurrency evaluation of many instances
//	cmd/dpsolve/ command-line front end
//
// Every problem package shares one contract: the three strategies return
// the same value for the same input, or the same error. Recursive
// strategies are guarded by memo.Options.MaxDepth and report
// memo.ErrDepthExceeded instead of overflowing the goroutine stack.
package dpkit
