// SPDX-License-Identifier: MIT

package grid

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
