// SPDX-License-Identifier: MIT

package catalog

import "strconv"

// Kind tells which field of a Value is meaningful.
type Kind int

const (
	// IntKind marks counts and optima.
	IntKind Kind = iota
	// FloatKind marks probabilities.
	FloatKind
)

// Value is the result of evaluating an Instance.
type Value struct {
	Kind  Kind
	Int   int
	Float float64
}

// IntValue wraps an integer result.
func IntValue(v int) Value { return Value{Kind: IntKind, Int: v} }

// FloatValue wraps a probability.
func FloatValue(v float64) Value { return Value{Kind: FloatKind, Float: v} }

// String prints integers exactly and floats with the fewest digits that
// round-trip.
func (v Value) String() string {
	if v.Kind == FloatKind {
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}

	return strconv.Itoa(v.Int)
}

// Equal reports whether v and o are the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == FloatKind {
		return v.Float == o.Float
	}

	return v.Int == o.Int
}
