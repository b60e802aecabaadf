// SPDX-License-Identifier: MIT
// Package memo: functional options for evaluators and solvers.
//
// Every solver in dpkit accepts ...memo.Option and resolves it with Gather.
// Option constructors panic only on nonsensical values (programmer error);
// user data never causes a panic.

package memo

// DefaultMaxDepth bounds recursion for Exhaustive and TopDown evaluation.
// Deep enough for every example in the repository, shallow enough to stop
// well before the goroutine stack limit.
const DefaultMaxDepth = 100_000

const (
	panicMaxDepthNegative = "memo: WithMaxDepth: depth must be >= 0"
	panicCacheKindInvalid = "memo: WithCache: unknown cache kind"
	panicMemoryModeBad    = "memo: WithMemoryMode: unknown memory mode"
)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration of one top-level solve.
type Options struct {
	// MaxDepth is the recursion limit; 0 disables the guard.
	MaxDepth int

	// Cache selects dense or sparse top-down storage.
	Cache CacheKind

	// Memory selects full or rolling tabulation.
	Memory MemoryMode

	// Stats, when non-nil, receives evaluator counters.
	Stats *Stats
}

// DefaultOptions returns the zero-configuration behaviour:
// MaxDepth=DefaultMaxDepth, DenseCache, FullTable, no stats sink.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Cache:    DenseCache,
		Memory:   FullTable,
	}
}

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxDepth sets the recursion limit. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxDepthNegative)
	}

	return func(o *Options) { o.MaxDepth = depth }
}

// WithCache selects the top-down cache storage.
func WithCache(kind CacheKind) Option {
	if kind != DenseCache && kind != SparseCache {
		panic(panicCacheKindInvalid)
	}

	return func(o *Options) { o.Cache = kind }
}

// WithMemoryMode selects full or rolling tabulation.
func WithMemoryMode(mode MemoryMode) Option {
	if mode != FullTable && mode != RollingArray {
		panic(panicMemoryModeBad)
	}

	return func(o *Options) { o.Memory = mode }
}

// WithStats directs evaluator counters into s. The sink is reset at the
// start of each top-level solve.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.Stats = s }
}

// CacheSize returns the dense cache size for a state space of dims, checked
// with Cells. Sparse caches grow on demand, so an oversized space only
// saturates their size hint at MaxCells.
func (o Options) CacheSize(dims ...int) (int, error) {
	n, err := Cells(dims...)
	if err != nil && o.Cache == SparseCache {
		return MaxCells, nil
	}

	return n, err
}

// TableSize checks a bottom-up table of layers×width cells, or a single
// width-cell layer under RollingArray.
func (o Options) TableSize(layers, width int) error {
	var err error
	if o.Memory == RollingArray {
		_, err = Cells(width)
	} else {
		_, err = Cells(layers, width)
	}

	return err
}
