// SPDX-License-Identifier: MIT

package main

import (
	"github.com/urfave/cli/v2"
)

var (
	// FileFlag points at a YAML instance file.
	FileFlag = cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "YAML file with an `instances:` list",
		Required: true,
	}
	// StrategyFlag selects the evaluation strategy for run.
	StrategyFlag = cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"s"},
		Usage:   "exhaustive, top-down or bottom-up",
		Value:   "bottom-up",
	}
	// ConcurrencyFlag bounds parallel instances; 0 means one per CPU.
	ConcurrencyFlag = cli.IntFlag{
		Name:    "concurrency",
		Aliases: []string{"j"},
		Usage:   "instances evaluated in parallel (0 = GOMAXPROCS)",
	}
	// MaxDepthFlag is the recursion limit of exhaustive and top-down evaluation.
	MaxDepthFlag = cli.IntFlag{
		Name:  "max-depth",
		Usage: "recursion limit for exhaustive and top-down (0 = unlimited)",
		Value: 100_000,
	}
	// CacheFlag selects the top-down cache storage.
	CacheFlag = cli.StringFlag{
		Name:  "cache",
		Usage: "top-down cache: dense or sparse",
		Value: "dense",
	}
	// MemoryFlag selects full or rolling tabulation.
	MemoryFlag = cli.StringFlag{
		Name:  "memory",
		Usage: "bottom-up table: full or rolling",
		Value: "full",
	}
	// MetricsFlag prints the batch counters after the run.
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "print task counters after the run",
	}
	// LogLevelFlag sets the go-logging level.
	LogLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: WARNING)",
		Value:   "WARNING",
	}
)
