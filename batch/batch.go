// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/catalog"
	"github.com/katalvlaran/dpkit/internal/logger"
	"golang.org/x/sync/errgroup"
)

const panicConcurrencyNegative = "batch: WithConcurrency: n must be >= 0"

// Result is the outcome of one Task. Results are returned in task order.
type Result struct {
	Name    string
	Value   catalog.Value
	Err     error
	Elapsed time.Duration
}

// Option configures Run.
type Option func(*config)

type config struct {
	concurrency int
	log         logger.Logger
	metrics     *Metrics
}

// WithConcurrency bounds the number of tasks running at once.
// Zero means runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	if n < 0 {
		panic(panicConcurrencyNegative)
	}

	return func(c *config) { c.concurrency = n }
}

// WithLogger enables per-task and summary logging.
func WithLogger(l logger.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// Run executes tasks with bounded concurrency and returns one Result per
// task, in input order. Task failures are stored in Result.Err. If ctx is
// cancelled, tasks not yet started get the context error as their Result.Err
// and Run returns it as well.
func Run(ctx context.Context, tasks []Task, opts ...Option) ([]Result, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.concurrency == 0 {
		cfg.concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	start := time.Now()
	for i, t := range tasks {
		if gctx.Err() != nil {
			results[i] = cfg.canceled(t.Name(), gctx.Err())
			continue
		}
		i, t := i, t
		g.Go(func() error {
			results[i] = cfg.execute(gctx, t)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if cfg.log != nil {
		cfg.log.Infof("batch: %d tasks, %d failed, %s", len(tasks), failed, time.Since(start).Round(time.Microsecond))
	}
	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, "batch: run interrupted")
	}

	return results, nil
}

func (c *config) execute(ctx context.Context, t Task) Result {
	name := t.Name()
	if err := ctx.Err(); err != nil {
		return c.canceled(name, err)
	}

	start := time.Now()
	v, err := t.Run(ctx)
	elapsed := time.Since(start)

	status := StatusOK
	if err != nil {
		status = StatusError
		err = errors.Wrapf(err, "task %s", name)
		if c.log != nil {
			c.log.Warningf("%s failed after %s: %v", name, elapsed, err)
		}
	} else if c.log != nil {
		c.log.Debugf("%s = %s (%s)", name, v, elapsed)
	}
	c.metrics.observe(status, elapsed.Seconds())

	return Result{Name: name, Value: v, Err: err, Elapsed: elapsed}
}

func (c *config) canceled(name string, err error) Result {
	c.metrics.observe(StatusCanceled, 0)

	return Result{Name: name, Err: err}
}
