// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/dpkit/batch"
	"github.com/katalvlaran/dpkit/catalog"
	"github.com/katalvlaran/dpkit/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

var runCommand = cli.Command{
	Action:    runAction,
	Name:      "run",
	Usage:     "Evaluate every instance of a file with one strategy.",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&FileFlag,
		&StrategyFlag,
		&ConcurrencyFlag,
		&MaxDepthFlag,
		&CacheFlag,
		&MemoryFlag,
		&MetricsFlag,
		&LogLevelFlag,
	},
}

func runAction(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "dpsolve-run")

	instances, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return err
	}
	log.Infof("loaded %d instances from %s", len(instances), cfg.File)

	reg := prometheus.NewRegistry()
	tasks := batch.FromInstances(instances, cfg.Strategy, cfg.options()...)
	results, err := batch.Run(ctx.Context, tasks,
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(log),
		batch.WithMetrics(batch.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	t := newTable(ctx)
	t.AppendHeader(table.Row{"Instance", "Problem", "Strategy", "Value", "Expect", "Elapsed", "Error"})
	failed := 0
	for i, r := range results {
		in := instances[i]
		rerr := r.Err
		if rerr == nil {
			rerr = in.Check(r.Value)
		}
		value := ""
		if r.Err == nil {
			value = r.Value.String()
		}
		if rerr != nil {
			failed++
		}
		t.AppendRow(table.Row{in.Label(), in.Problem, cfg.Strategy, value, in.Expect, round(r.Elapsed), errText(rerr)})
	}
	t.Render()

	if cfg.Metrics {
		if err := renderMetrics(ctx, reg); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("%d of %d instances failed", failed, len(results))
	}

	return nil
}
