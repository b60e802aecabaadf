// SPDX-License-Identifier: MIT

package memo

// Cache maps states to computed values for one top-level evaluation.
//
// Presence is explicit: Get reports whether a value was stored, so a
// computed zero is distinguishable from "never computed". Implementations
// are not safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the stored value for k and whether one exists.
	Get(k K) (V, bool)

	// Put records v for k.
	Put(k K, v V)

	// Len returns the number of stored states.
	Len() int
}

// Identity is the dense index function for states that already are small
// non-negative integers.
func Identity(k int) int { return k }

// Dense is a slice-backed Cache over a state space of known size.
// index maps a state to [0,size); states mapping outside that range pass
// through uncached (useful for base states such as off-board squares).
type Dense[K comparable, V any] struct {
	index   func(K) int
	vals    []V
	present []bool
	n       int
}

// NewDense allocates a dense cache for size states.
// Complexity: O(size) time and memory.
func NewDense[K comparable, V any](size int, index func(K) int) *Dense[K, V] {
	if size < 0 {
		size = 0
	}

	return &Dense[K, V]{
		index:   index,
		vals:    make([]V, size),
		present: make([]bool, size),
	}
}

// Get implements Cache.
func (d *Dense[K, V]) Get(k K) (V, bool) {
	i := d.index(k)
	if i < 0 || i >= len(d.vals) || !d.present[i] {
		var zero V
		return zero, false
	}

	return d.vals[i], true
}

// Put implements Cache. Out-of-range states are ignored.
func (d *Dense[K, V]) Put(k K, v V) {
	i := d.index(k)
	if i < 0 || i >= len(d.vals) {
		return
	}
	if !d.present[i] {
		d.present[i] = true
		d.n++
	}
	d.vals[i] = v
}

// Len implements Cache.
func (d *Dense[K, V]) Len() int { return d.n }

// Sparse is a map-backed Cache.
type Sparse[K comparable, V any] struct {
	m map[K]V
}

// NewSparse allocates a sparse cache; hint pre-sizes the map.
func NewSparse[K comparable, V any](hint int) *Sparse[K, V] {
	if hint < 0 {
		hint = 0
	}

	return &Sparse[K, V]{m: make(map[K]V, hint)}
}

// Get implements Cache.
func (s *Sparse[K, V]) Get(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Put implements Cache.
func (s *Sparse[K, V]) Put(k K, v V) { s.m[k] = v }

// Len implements Cache.
func (s *Sparse[K, V]) Len() int { return len(s.m) }

// NewCache builds the cache selected by o.Cache. size and index describe the
// dense layout; a sparse cache ignores index and uses size as a hint only.
func NewCache[K comparable, V any](o Options, size int, index func(K) int) Cache[K, V] {
	if o.Cache == SparseCache {
		return NewSparse[K, V](min(size, 1024))
	}

	return NewDense[K, V](size, index)
}
