// SPDX-License-Identifier: MIT

// Package logger builds leveled module loggers for the dpkit CLI and the
// batch runner. Solver packages never log.
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// DefaultFormat is the line layout of every dpkit logger.
const DefaultFormat = "%{color}%{level:.4s} %{time:15:04:05.000} [%{module}]:%{color:reset} %{message}"

// Logger is the subset of *logging.Logger used by dpkit.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger returns a logger for module writing to stderr. An unknown level
// falls back to INFO.
func NewLogger(level, module string) *logging.Logger {
	return NewLoggerTo(os.Stderr, level, module)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, level, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(DefaultFormat))

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)
	// IsEnabledFor consults the package default backend.
	logging.SetLevel(lvl, module)

	l := logging.MustGetLogger(module)
	l.SetBackend(leveled)

	return l
}
