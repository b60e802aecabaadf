// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
)

// ErrEmptySequence indicates one or both inputs are empty. It wraps
// memo.ErrInvalidInput.
var ErrEmptySequence = errors.Wrap(memo.ErrInvalidInput, "dtw: input sequences must be non-empty")

// Params configures the warping.
//
//   - Window: Sakoe–Chiba band, the largest |i−j| allowed. 0 means no band.
//   - SlopePenalty: cost added to every non-diagonal step. Must be >= 0.
type Params struct {
	Window       int     `yaml:"window,omitempty" json:"window,omitempty"`
	SlopePenalty float64 `yaml:"penalty,omitempty" json:"penalty,omitempty"`
}

// allows reports whether cell (i, j) lies inside the band.
func (p Params) allows(i, j int) bool {
	if p.Window <= 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= p.Window
}

func validate(a, b []float64, p Params) error {
	if len(a) == 0 || len(b) == 0 {
		return errors.WithStack(ErrEmptySequence)
	}
	if p.Window < 0 {
		return memo.Invalid("dtw: window %d must be >= 0", p.Window)
	}
	if p.SlopePenalty < 0 || math.IsNaN(p.SlopePenalty) || math.IsInf(p.SlopePenalty, 0) {
		return memo.Invalid("dtw: slope penalty %v must be a finite value >= 0", p.SlopePenalty)
	}
	for _, s := range [][]float64{a, b} {
		for i, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return memo.Invalid("dtw: value %v at index %d is not finite", v, i)
			}
		}
	}

	return nil
}
