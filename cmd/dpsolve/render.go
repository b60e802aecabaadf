// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

// newTable returns a table writer that renders to the app's output.
// Headers keep their case so strategy and problem names read as typed.
func newTable(ctx *cli.Context) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	return t
}

func errText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}

// renderMetrics prints every counter and histogram sample count in reg.
func renderMetrics(ctx *cli.Context, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	t := newTable(ctx)
	t.AppendHeader(table.Row{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += lp.GetName() + "=" + lp.GetValue() + " "
			}
			switch {
			case m.GetCounter() != nil:
				t.AppendRow(table.Row{mf.GetName(), labels, m.GetCounter().GetValue()})
			case m.GetHistogram() != nil:
				t.AppendRow(table.Row{mf.GetName() + "_count", labels, m.GetHistogram().GetSampleCount()})
			}
		}
	}
	t.Render()

	return nil
}
