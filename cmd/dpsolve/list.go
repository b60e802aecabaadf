// SPDX-License-Identifier: MIT

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/dpkit/catalog"
	"github.com/urfave/cli/v2"
)

var listCommand = cli.Command{
	Action: listAction,
	Name:   "list",
	Usage:  "List the registered problems and the instance fields they read.",
}

func listAction(ctx *cli.Context) error {
	t := newTable(ctx)
	t.AppendHeader(table.Row{"Problem", "Parameters", "Description"})
	for _, p := range catalog.Problems() {
		summary, params, err := catalog.Describe(p)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{p, params, summary})
	}
	t.Render()

	return nil
}
