// SPDX-License-Identifier: MIT

package memo

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Recurrence defines the value of one state in terms of its successors.
//
// The function must be pure: equal states yield equal values, and it may
// consult successors only through sub. Successors must be strictly smaller
// under some terminating measure (remaining length, interval width, moves
// left, ...), otherwise neither recursion nor tabulation terminates.
type Recurrence[K comparable, V any] func(state K, sub func(K) V) V

// Evaluator runs a Recurrence recursively, with or without a cache.
//
// One Evaluator serves one top-level call. It may be evaluated at several
// roots (e.g. every start index of a sequence); with a cache, all roots
// share it. Not safe for concurrent use.
type Evaluator[K comparable, V any] struct {
	rec      Recurrence[K, V]
	cache    Cache[K, V] // nil ⇒ exhaustive
	sub      func(K) V   // e.visit, bound once
	maxDepth int
	depth    int
	stats    *Stats
}

// depthExceeded unwinds the recursion when the guard trips. It never
// escapes Eval.
type depthExceeded struct {
	state string
	depth int
}

// NewExhaustive builds an evaluator that recurses into every successor.
func NewExhaustive[K comparable, V any](rec Recurrence[K, V], o Options) *Evaluator[K, V] {
	return newEvaluator(rec, nil, o)
}

// NewTopDown builds an evaluator that expands each state at most once,
// remembering results in cache.
func NewTopDown[K comparable, V any](rec Recurrence[K, V], cache Cache[K, V], o Options) *Evaluator[K, V] {
	if cache == nil {
		cache = NewSparse[K, V](0)
	}

	return newEvaluator(rec, cache, o)
}

func newEvaluator[K comparable, V any](rec Recurrence[K, V], cache Cache[K, V], o Options) *Evaluator[K, V] {
	stats := o.Stats
	if stats == nil {
		stats = &Stats{}
	}
	*stats = Stats{}
	e := &Evaluator[K, V]{
		rec:      rec,
		cache:    cache,
		maxDepth: o.MaxDepth,
		stats:    stats,
	}
	e.sub = e.visit

	return e
}

// Eval returns the value of state.
//
// Errors:
//   - ErrDepthExceeded if the recursion goes deeper than Options.MaxDepth.
//     The evaluator is reset and may be used again; cached values computed
//     before the failure remain valid.
func (e *Evaluator[K, V]) Eval(state K) (v V, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		de, ok := r.(depthExceeded)
		if !ok {
			panic(r)
		}
		e.depth = 0
		var zero V
		v = zero
		err = errors.Wrapf(ErrDepthExceeded, "at state %s (depth %d, limit %d)", de.state, de.depth, e.maxDepth)
	}()

	return e.visit(state), nil
}

// Stats returns the counters accumulated so far.
func (e *Evaluator[K, V]) Stats() Stats { return *e.stats }

// visit is the recursive step handed to the recurrence as sub.
func (e *Evaluator[K, V]) visit(state K) V {
	e.stats.Visits++
	if e.cache != nil {
		if v, ok := e.cache.Get(state); ok {
			e.stats.Hits++
			return v
		}
	}

	e.depth++
	if e.depth > e.stats.MaxDepth {
		e.stats.MaxDepth = e.depth
	}
	if e.maxDepth > 0 && e.depth > e.maxDepth {
		panic(depthExceeded{state: fmt.Sprint(state), depth: e.depth})
	}

	e.stats.Expansions++
	v := e.rec(state, e.sub)
	e.depth--

	if e.cache != nil {
		e.cache.Put(state, v)
		e.stats.Stores++
	}

	return v
}
