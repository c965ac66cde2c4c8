// SPDX-License-Identifier: MPL-2.0

// Package logging builds the stderr diagnostics logger. Standard output is
// reserved for the resolved toolchain name, so nothing here ever writes to it.
package logging

import (
	"io"

	"github.com/rustup-prompt/rustup-prompt/internal/config"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level. Unknown levels fall
// back to warn.
func New(w io.Writer, level config.LogLevel) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  Level(level),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Level maps a config level onto a charmbracelet/log level.
func Level(level config.LogLevel) log.Level {
	switch level {
	case config.LogLevelDebug:
		return log.DebugLevel
	case config.LogLevelInfo:
		return log.InfoLevel
	case config.LogLevelError:
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
