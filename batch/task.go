// SPDX-License-Identifier: MIT

package batch

//go:generate mockgen -source task.go -destination task_mock.go -package batch

import (
	"context"

	"github.com/katalvlaran/dpkit/catalog"
	"github.com/katalvlaran/dpkit/memo"
)

// Task is one independent unit of work.
type Task interface {
	// Name identifies the task in results, logs and errors.
	Name() string
	// Run computes the task's value. It must not share mutable state with
	// other tasks.
	Run(ctx context.Context) (catalog.Value, error)
}

// InstanceTask evaluates one catalog Instance with one strategy.
type InstanceTask struct {
	Instance catalog.Instance
	Strategy memo.Strategy
	Options  []memo.Option
}

// Name returns "<instance>/<strategy>".
func (t InstanceTask) Name() string {
	return t.Instance.Label() + "/" + t.Strategy.String()
}

// Run evaluates the instance. Solvers do not suspend, so the context is only
// checked before starting.
func (t InstanceTask) Run(ctx context.Context) (catalog.Value, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Value{}, err
	}

	return catalog.Evaluate(t.Instance, t.Strategy, t.Options...)
}

// FromInstances builds one InstanceTask per instance, all with strategy s.
func FromInstances(instances []catalog.Instance, s memo.Strategy, opts ...memo.Option) []Task {
	tasks := make([]Task, len(instances))
	for i, in := range instances {
		tasks[i] = InstanceTask{Instance: in, Strategy: s, Options: opts}
	}

	return tasks
}
