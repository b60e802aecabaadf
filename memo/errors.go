// SPDX-License-Identifier: MIT
// Package memo: sentinel error set shared by every solver package.
//
// Solvers return these sentinels wrapped with context (errors.Wrapf); callers
// match with errors.Is. Nothing in dpkit panics on user input.

package memo

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput is returned when a problem parameter is outside its
	// domain (negative length, non-positive coin, ragged grid, ...).
	ErrInvalidInput = errors.New("memo: invalid input")

	// ErrNoSolution marks an unreachable optimum: no combination of
	// transitions reaches a base case (e.g. an amount no coin set can make).
	ErrNoSolution = errors.New("memo: no solution")

	// ErrDepthExceeded is returned when a recursive evaluation goes deeper
	// than Options.MaxDepth. Use the BottomUp strategy for such inputs.
	ErrDepthExceeded = errors.New("memo: recursion depth exceeded")

	// ErrOverflow is returned when the exact answer does not fit the result type.
	ErrOverflow = errors.New("memo: result overflows int")

	// ErrUnknownStrategy is returned for a Strategy value or name that is not recognised.
	ErrUnknownStrategy = errors.New("memo: unknown strategy")

	// ErrStrategyMismatch is returned when two strategies disagree on one input.
	ErrStrategyMismatch = errors.New("memo: strategies disagree")

	// ErrTooLarge is returned when a dense cache or table would exceed MaxCells.
	ErrTooLarge = errors.New("memo: state space too large to allocate")
)

// Invalid wraps ErrInvalidInput with a formatted description of the offending field.
func Invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// Unknown wraps ErrUnknownStrategy for a Strategy value outside the enum.
func Unknown(s Strategy) error {
	return errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(s))
}

// Overflow wraps ErrOverflow with a formatted description of the limit hit.
func Overflow(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

// Tag returns err with sentinel added to its chain, so errors.Is matches
// both err's own chain and sentinel. The message is err's.
func Tag(err, sentinel error) error {
	if err == nil {
		return nil
	}

	return &tagged{err: err, sentinel: sentinel}
}

type tagged struct {
	err, sentinel error
}

func (t *tagged) Error() string { return t.err.Error() }

func (t *tagged) Unwrap() []error { return []error{t.err, t.sentinel} }
