// SPDX-License-Identifier: MIT

package memo

import "github.com/cockroachdb/errors"

// MaxCells bounds one dense allocation: a dense cache, a full table or a
// rolling layer.
const MaxCells = 1 << 30

// Cells returns the product of dims. A negative dimension (an n+1 that
// wrapped around) or a product above MaxCells yields ErrTooLarge.
func Cells(dims ...int) (int, error) {
	p := 1
	for _, d := range dims {
		if d < 0 {
			return 0, errors.Wrapf(ErrTooLarge, "dimension %d out of range", d)
		}
		if d != 0 && p > MaxCells/d {
			return 0, errors.Wrapf(ErrTooLarge, "%v exceeds MaxCells=%d", dims, MaxCells)
		}
		p *= d
	}

	return p, nil
}

// Table is a rows×cols tabulation table in row-major flat storage.
//
// Every cell is its own storage location: rows never alias each other, so
// writing one cell can never change another. Row returns a capacity-limited
// view, so appending to a row cannot spill into the next one.
type Table[V any] struct {
	r, c int
	data []V
}

// NewTable allocates a zero-valued rows×cols table. Non-positive
// dimensions yield an empty table.
// Complexity: O(rows·cols) time and memory.
func NewTable[V any](rows, cols int) *Table[V] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Table[V]{r: rows, c: cols, data: make([]V, rows*cols)}
}

// Rows returns the number of rows.
func (t *Table[V]) Rows() int { return t.r }

// Cols returns the number of columns.
func (t *Table[V]) Cols() int { return t.c }

// At returns cell (i, j). Indices are not range-checked beyond the slice bounds.
func (t *Table[V]) At(i, j int) V { return t.data[i*t.c+j] }

// Set writes cell (i, j).
func (t *Table[V]) Set(i, j int, v V) { t.data[i*t.c+j] = v }

// Row returns row i as a view of the backing storage.
func (t *Table[V]) Row(i int) []V {
	lo, hi := i*t.c, (i+1)*t.c
	return t.data[lo:hi:hi]
}

// Rolling keeps the two most recent layers of a layered recurrence, where
// layer i only reads layer i-1 (and earlier cells of layer i).
// Memory: O(width) instead of O(layers·width).
type Rolling[V any] struct {
	prev, curr []V
	layer      int
}

// NewRolling allocates two zero-valued layers of the given width.
func NewRolling[V any](width int) *Rolling[V] {
	if width < 0 {
		width = 0
	}

	return &Rolling[V]{prev: make([]V, width), curr: make([]V, width)}
}

// Prev returns the previous layer (the base layer before the first Advance).
func (r *Rolling[V]) Prev() []V { return r.prev }

// Curr returns the layer being filled.
func (r *Rolling[V]) Curr() []V { return r.curr }

// Layer returns how many layers have been completed.
func (r *Rolling[V]) Layer() int { return r.layer }

// Advance makes the current layer the previous one and hands out a cleared
// layer to fill next.
func (r *Rolling[V]) Advance() {
	r.prev, r.curr = r.curr, r.prev
	var zero V
	for i := range r.curr {
		r.curr[i] = zero
	}
	r.layer++
}
