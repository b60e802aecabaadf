// SPDX-License-Identifier: MIT

package memo

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Strategy selects how a recurrence is evaluated. All three strategies
// return identical values for every valid input.
//
//   - Exhaustive: recurse into every successor with no cache. Exponential
//     in general; the executable definition the other two are checked against.
//   - TopDown: recurse, but expand each reachable state at most once.
//   - BottomUp: sweep the states in dependency order without recursion.
type Strategy int

const (
	// Exhaustive evaluates by plain recursion.
	Exhaustive Strategy = iota

	// TopDown evaluates by recursion with a per-call cache.
	TopDown

	// BottomUp evaluates by explicit tabulation.
	BottomUp
)

// Strategies lists every strategy in canonical order.
func Strategies() []Strategy {
	return []Strategy{Exhaustive, TopDown, BottomUp}
}

// String returns the canonical hyphenated name.
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
// Accepted aliases: brute-force, memo, memoized, tabulation, tabulated.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exhaustive", "brute-force", "bruteforce":
		return Exhaustive, nil
	case "top-down", "topdown", "memo", "memoized":
		return TopDown, nil
	case "bottom-up", "bottomup", "tabulation", "tabulated":
		return BottomUp, nil
	default:
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}

// CacheKind selects the storage behind a top-down cache.
type CacheKind int

const (
	// DenseCache stores values in a slice sized to the whole state space.
	// Fastest when the space is small and mostly visited.
	DenseCache CacheKind = iota

	// SparseCache stores values in a map keyed by state.
	// Preferable when only a thin slice of a large space is reachable.
	SparseCache
)

// String returns the flag-style name of the cache kind.
func (k CacheKind) String() string {
	if k == SparseCache {
		return "sparse"
	}

	return "dense"
}

// MemoryMode controls how a bottom-up sweep stores its table.
//
//   - FullTable: keep every layer. Memory: O(full state space).
//   - RollingArray: keep only the previous and current layer when the
//     recurrence never looks further back. Memory: O(one layer).
//
// Problems whose recurrence is not layered ignore the mode.
type MemoryMode int

const (
	// FullTable keeps the whole table in memory.
	FullTable MemoryMode = iota

	// RollingArray keeps two layers only.
	RollingArray
)

// String returns the flag-style name of the memory mode.
func (m MemoryMode) String() string {
	if m == RollingArray {
		return "rolling"
	}

	return "full"
}

// Stats counts evaluator activity for one top-level call.
//
//   - Visits: calls into the evaluator, cached or not.
//   - Expansions: recurrence bodies actually run.
//   - Hits: visits answered from the cache.
//   - Stores: values written to the cache.
//   - MaxDepth: deepest recursion observed.
type Stats struct {
	Visits     int
	Expansions int
	Hits       int
	Stores     int
	MaxDepth   int
}

// Pair is the value type for recurrences that must carry both the largest
// and the smallest attainable result, e.g. products where a negative factor
// can turn the minimum into the maximum.
type Pair struct {
	Max, Min int
}
