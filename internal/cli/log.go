// Package cli implements the slotforge command-line interface.
//
// This package provides commands for generating pad ring configuration
// files, deriving documentation from them, rendering previews, and serving
// both over HTTP. Commands are wired together with cobra; all diagnostic
// output goes through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Produce configuration files for slot/density/edge combinations
//   - docs: Derive slot documentation (JSON and Markdown) from configurations
//   - preview: Render configurations as SVG, PNG, or JPEG thumbnails
//   - inspect: Browse a directory of configurations interactively
//   - serve: Expose configurations and previews over HTTP
//   - cache: Manage the preview render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --quiet (-q) to silence everything below warnings. Each command receives
// its logger through context.Context, which keeps progress reporting
// consistent across pipeline stages.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a leveled logger writing to w. Timestamps carry
// centisecond precision so batch stages under a second stay comparable.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress marks the start of an operation; done logs how long it took.
// Sequential use by one goroutine only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since the tracker was created,
// rounded to the millisecond: "Documented 4 slots (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// loggerKey keys the logger carried through command contexts. A private
// struct type cannot collide with keys from other packages.
type loggerKey struct{}

// withLogger attaches l to ctx for retrieval with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the context's logger, or log.Default() when
// none is attached, so commands always log somewhere.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
