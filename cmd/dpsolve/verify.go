// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/dpkit/batch"
	"github.com/katalvlaran/dpkit/catalog"
	"github.com/katalvlaran/dpkit/internal/logger"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

var verifyCommand = cli.Command{
	Action:    verifyAction,
	Name:      "verify",
	Usage:     "Evaluate every instance with all three strategies and compare the results.",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&FileFlag,
		&ConcurrencyFlag,
		&MaxDepthFlag,
		&CacheFlag,
		&MemoryFlag,
		&MetricsFlag,
		&LogLevelFlag,
	},
}

// verifyTask runs catalog.Verify as a batch task and keeps the full report.
type verifyTask struct {
	instance catalog.Instance
	options  []memo.Option
	report   catalog.Report
}

func (v *verifyTask) Name() string { return v.instance.Label() }

func (v *verifyTask) Run(ctx context.Context) (catalog.Value, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Value{}, err
	}
	rep, err := catalog.Verify(v.instance, v.options...)
	v.report = rep
	if err != nil {
		return catalog.Value{}, err
	}
	value := rep.Outcomes[len(rep.Outcomes)-1].Value

	return value, v.instance.Check(value)
}

func verifyAction(ctx *cli.Context) error {
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "dpsolve-verify")

	instances, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return err
	}

	vts := make([]*verifyTask, len(instances))
	tasks := make([]batch.Task, len(instances))
	for i, in := range instances {
		vts[i] = &verifyTask{instance: in, options: cfg.options()}
		tasks[i] = vts[i]
	}

	reg := prometheus.NewRegistry()
	results, err := batch.Run(ctx.Context, tasks,
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(log),
		batch.WithMetrics(batch.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	header := table.Row{"Instance", "Problem"}
	for _, s := range memo.Strategies() {
		header = append(header, s.String())
	}
	header = append(header, "Expansions", "Status")

	t := newTable(ctx)
	t.AppendHeader(header)
	failed := 0
	for i, r := range results {
		rep := vts[i].report
		row := table.Row{instances[i].Label(), instances[i].Problem}
		expansions := make([]string, 0, len(rep.Outcomes))
		for _, o := range rep.Outcomes {
			if o.Err != nil {
				row = append(row, "error")
			} else {
				row = append(row, o.Value.String())
			}
			if o.Strategy != memo.BottomUp {
				expansions = append(expansions, strconv.Itoa(o.Stats.Expansions))
			}
		}
		for len(row) < len(header)-2 {
			row = append(row, "")
		}
		status := "ok"
		if r.Err != nil {
			failed++
			status = errText(r.Err)
			if errors.Is(r.Err, memo.ErrStrategyMismatch) {
				status = "MISMATCH"
			}
		}
		row = append(row, strings.Join(expansions, " / "), status)
		t.AppendRow(row)
	}
	t.Render()

	if cfg.Metrics {
		if err := renderMetrics(ctx, reg); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("%d of %d instances failed verification", failed, len(results))
	}

	return nil
}
