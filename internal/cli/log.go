// Package cli implements the giftcircle command-line interface.
//
// This package provides commands for drawing gift circles from participant
// files, checking inputs before a draw, browsing the draw history and serving
// the HTTP API. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - draw: Draw a gift circle and write it as CSV, JSON, YAML, a chain of
//     names or a Graphviz diagram
//   - check: Validate an input file and report group statistics
//   - history: List and show recorded draws
//   - serve: Run the HTTP API
//
// # Configuration
//
// Settings are resolved in order: command-line flags, GIFTCIRCLE_*
// environment variables (a .env file in the working directory is loaded
// first), the TOML config file, then built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every rejected candidate path. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Drew gift circle for 12 participants (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
