// SPDX-License-Identifier: MIT

package grid

// Board is a Height×Width rectangle of squares addressed by (row, col).
type Board struct {
	Height, Width int
}

// InBounds reports whether (row, col) is a square of the board.
// Complexity: O(1).
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Index maps an in-bounds square to its row-major index row*Width + col.
func (b Board) Index(row, col int) int { return row*b.Width + col }

// Squares returns Height×Width, or 0 for a degenerate board.
func (b Board) Squares() int {
	if b.Height <= 0 || b.Width <= 0 {
		return 0
	}

	return b.Height * b.Width
}

var knightJumps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// KnightJumps returns the eight (dRow, dCol) knight displacements, (±1,±2)
// and (±2,±1). The returned slice is a copy and may be modified by the caller.
// Complexity: O(1).
func KnightJumps() [][2]int {
	out := make([][2]int, len(knightJumps))
	copy(out, knightJumps)

	return out
}
