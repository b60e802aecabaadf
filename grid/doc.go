// SPDX-License-Identifier: MIT

// Package grid provides validated rectangular grids and bounded boards for
// the 2-D dynamic-programming problems in dpkit.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T, deep-copied on construction so the
//     caller can never mutate a grid a solver is reading.
//   - Board is a bare Height×Width rectangle for problems that only need
//     bounds (knight moves).
//   - KnightJumps returns the eight L-shaped knight displacements.
//
// Complexity:
//
//   - New: O(rows×cols) time and memory.
//   - At, InBounds, KnightJumps: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
