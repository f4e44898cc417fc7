// Package cli implements the linkrank command-line interface.
//
// The commands load a graph from a pages file and a links file, then print,
// search, render, serve or interactively edit it. The CLI is built with
// cobra; output is styled with lipgloss and diagnostics go through
// charmbracelet/log on stderr.
//
// # Commands
//
//   - print: list pages with rank, links and keywords
//   - search: rank pages carrying a keyword
//   - render: draw the graph as Graphviz DOT or SVG
//   - shell: interactive menu for adding and removing pages and links
//   - serve: HTTP JSON API with optional Prometheus metrics
//   - config: locate, create or show the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; otherwise the
// level comes from the configuration file. The logger is passed through
// context.Context so commands and helpers share it.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat renders timestamps as "HH:MM:SS.cc", e.g. "14:32:01.45".
const logTimeFormat = "15:04:05.00"

// newLogger creates a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// progress measures one operation and logs its completion with the elapsed
// time. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, e.g.
// "Loaded 12 pages and 30 links elapsed=3ms".
func (p *progress) done(msg string) {
	p.logger.Info(msg, "elapsed", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
