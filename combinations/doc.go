// SPDX-License-Identifier: MIT

// Package combinations counts the sub-selections of a fixed array: every
// element is independently included or excluded, so the count is 2ⁿ.
//
// The state is the index of the next undecided element; the empty suffix
// has exactly one selection (choose nothing). The recurrence is
// deliberately the two-branch include/exclude definition, so the three
// strategies show the exponential-versus-linear gap on the simplest
// possible state space.
//
// Arrays longer than MaxLen yield memo.ErrOverflow.
package combinations
