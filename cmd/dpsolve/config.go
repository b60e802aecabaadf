// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/memo"
	"github.com/urfave/cli/v2"
)

// config is the validated flag set of one command invocation.
type config struct {
	File        string
	Strategy    memo.Strategy
	Concurrency int
	MaxDepth    int
	Cache       memo.CacheKind
	Memory      memo.MemoryMode
	Metrics     bool
	LogLevel    string
}

func newConfig(ctx *cli.Context) (*config, error) {
	cfg := &config{
		File:        ctx.String(FileFlag.Name),
		Concurrency: ctx.Int(ConcurrencyFlag.Name),
		MaxDepth:    ctx.Int(MaxDepthFlag.Name),
		Metrics:     ctx.Bool(MetricsFlag.Name),
		LogLevel:    ctx.String(LogLevelFlag.Name),
	}
	if cfg.Concurrency < 0 {
		return nil, errors.Newf("--%s must be >= 0, got %d", ConcurrencyFlag.Name, cfg.Concurrency)
	}
	if cfg.MaxDepth < 0 {
		return nil, errors.Newf("--%s must be >= 0, got %d", MaxDepthFlag.Name, cfg.MaxDepth)
	}

	strategy := ctx.String(StrategyFlag.Name)
	if strategy == "" {
		strategy = StrategyFlag.Value
	}
	s, err := memo.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	cfg.Strategy = s

	switch v := strings.ToLower(ctx.String(CacheFlag.Name)); v {
	case "", "dense":
		cfg.Cache = memo.DenseCache
	case "sparse":
		cfg.Cache = memo.SparseCache
	default:
		return nil, errors.Newf("--%s: unknown cache %q (dense, sparse)", CacheFlag.Name, v)
	}

	switch v := strings.ToLower(ctx.String(MemoryFlag.Name)); v {
	case "", "full":
		cfg.Memory = memo.FullTable
	case "rolling":
		cfg.Memory = memo.RollingArray
	default:
		return nil, errors.Newf("--%s: unknown memory mode %q (full, rolling)", MemoryFlag.Name, v)
	}

	return cfg, nil
}

// options converts the config to solver options.
func (c *config) options() []memo.Option {
	return []memo.Option{
		memo.WithMaxDepth(c.MaxDepth),
		memo.WithCache(c.Cache),
		memo.WithMemoryMode(c.Memory),
	}
}
