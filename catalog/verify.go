// SPDX-License-Identifier: MIT

package catalog

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
)

// Outcome is the result of one strategy on one instance.
type Outcome struct {
	Strategy memo.Strategy
	Value    Value
	Elapsed  time.Duration
	Stats    memo.Stats
	Err      error
}

// Report collects the outcomes of Verify in memo.Strategies order.
type Report struct {
	Instance Instance
	Outcomes []Outcome
}

// Agreed reports whether every strategy succeeded with the same value.
func (r Report) Agreed() bool {
	if len(r.Outcomes) == 0 {
		return false
	}
	first := r.Outcomes[0]
	for _, o := range r.Outcomes {
		if o.Err != nil || !o.Value.Equal(first.Value) {
			return false
		}
	}

	return true
}

// Verify evaluates inst with every strategy and compares the results.
//
// Errors:
//   - the first strategy error, if all strategies failed alike (e.g. invalid input);
//   - memo.ErrStrategyMismatch if strategies disagree on value or on success.
//
// The Report is returned in every case.
func Verify(inst Instance, opts ...memo.Option) (Report, error) {
	rep := Report{Instance: inst}
	for _, s := range memo.Strategies() {
		var st memo.Stats
		o := append(append([]memo.Option(nil), opts...), memo.WithStats(&st))
		start := time.Now()
		v, err := Evaluate(inst, s, o...)
		rep.Outcomes = append(rep.Outcomes, Outcome{
			Strategy: s,
			Value:    v,
			Elapsed:  time.Since(start),
			Stats:    st,
			Err:      err,
		})
	}
	if rep.Agreed() {
		return rep, nil
	}

	failed := 0
	for _, o := range rep.Outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed == len(rep.Outcomes) {
		return rep, rep.Outcomes[0].Err
	}

	parts := make([]string, len(rep.Outcomes))
	for i, o := range rep.Outcomes {
		if o.Err != nil {
			parts[i] = o.Strategy.String() + "=error"
		} else {
			parts[i] = o.Strategy.String() + "=" + o.Value.String()
		}
	}

	return rep, errors.Wrapf(memo.ErrStrategyMismatch, "instance %s: %s", inst.Label(), strings.Join(parts, " "))
}
