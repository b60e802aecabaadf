// SPDX-License-Identifier: MIT

package catalog

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownProblem indicates an Instance names no registered problem.
	ErrUnknownProblem = errors.New("catalog: unknown problem")

	// ErrDecode indicates an instance file could not be parsed.
	ErrDecode = errors.New("catalog: cannot decode instances")

	// ErrUnexpected indicates a computed value differs from Instance.Expect.
	ErrUnexpected = errors.New("catalog: value differs from expectation")
)
