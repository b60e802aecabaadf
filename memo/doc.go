// SPDX-License-Identifier: MIT

// Package memo is the shared evaluation core behind every solver in dpkit.
//
// 🚀 What is it?
//
//	A dynamic-programming problem is a state space plus a recurrence: each
//	state is either a base case or a combination of the values of a few
//	successor states. memo lets a problem write that recurrence ONCE and have
//	it evaluated three ways:
//	  • Exhaustive: plain recursion, no cache (the executable definition)
//	  • TopDown: the same recursion with a per-call cache
//	  • BottomUp: an explicit sweep over the states, written per problem
//	    on top of Table / Rolling storage
//
// ✨ Key features:
//   - Recurrence[K, V]: one definition drives both recursive strategies.
//   - Cache with explicit presence: a computed zero is a cached zero, so
//     "unset" can never collide with a legitimate value.
//   - Dense (slice) or Sparse (map) caches, selected with WithCache.
//   - Depth guard: runaway recursion ends in ErrDepthExceeded instead of
//     exhausting the goroutine stack.
//   - Optimum: min/max accumulator with an explicit "no candidate" state,
//     so "no solution" is never an overflowed sentinel.
//   - Table and Rolling: assign-once, independently owned storage for
//     tabulation, full or rolling-array.
//
// ⚙️ Usage:
//
//	rec := func(n int, sub func(int) int) int {
//		if n < 2 {
//			return n
//		}
//		return sub(n-1) + sub(n-2)
//	}
//	o := memo.Gather(memo.WithMaxDepth(1000))
//	ev := memo.NewTopDown(rec, memo.NewCache[int, int](o, 41, memo.Identity), o)
//	v, err := ev.Eval(40) // 102334155
//
// Concurrency:
//
//	An Evaluator and its cache belong to exactly one top-level call and are
//	not safe for concurrent use. Parallel callers build one evaluator each.
package memo
