// SPDX-License-Identifier: MIT

package memo

import "golang.org/x/exp/constraints"

// Goal is the direction of an optimisation.
type Goal int

const (
	// Min keeps the smallest candidate.
	Min Goal = iota
	// Max keeps the largest candidate.
	Max
)

// Optimum accumulates the best candidate of a min/max recurrence.
//
// It starts empty instead of at ±∞, so an optimisation over zero
// candidates is reported as "none" rather than as an extreme number that
// may later overflow when 1 is added to it.
type Optimum[T constraints.Ordered] struct {
	goal  Goal
	value T
	ok    bool
}

// Minimize returns an empty accumulator keeping the smallest offer.
func Minimize[T constraints.Ordered]() Optimum[T] { return Optimum[T]{goal: Min} }

// Maximize returns an empty accumulator keeping the largest offer.
func Maximize[T constraints.Ordered]() Optimum[T] { return Optimum[T]{goal: Max} }

// Offer considers v as a candidate.
func (o *Optimum[T]) Offer(v T) {
	if !o.ok {
		o.value, o.ok = v, true
		return
	}
	if (o.goal == Min && v < o.value) || (o.goal == Max && v > o.value) {
		o.value = v
	}
}

// Value returns the best candidate and whether any was offered.
func (o Optimum[T]) Value() (T, bool) { return o.value, o.ok }

// Or returns the best candidate, or def when nothing was offered.
func (o Optimum[T]) Or(def T) T {
	if !o.ok {
		return def
	}

	return o.value
}

// Empty reports whether no candidate was offered.
func (o Optimum[T]) Empty() bool { return !o.ok }
