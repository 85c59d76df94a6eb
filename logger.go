// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdom

import (
	"log/slog"

	"github.com/gogpu/ggdom/internal/logx"
)

// SetLogger configures the logger for ggdom and all its sub-packages.
// By default, ggdom produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ggdom:
//   - [slog.LevelDebug]: per-operation tracing (mutations applied, state
//     derived, removal of unmapped elements ignored)
//   - [slog.LevelInfo]: frame summaries
//   - [slog.LevelWarn]: soft inconsistencies (registered node without
//     layout, unparsable layout attributes)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	ggdom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by ggdom.
// Logger is safe for concurrent use and never returns nil.
func Logger() *slog.Logger {
	return logx.Logger()
}
