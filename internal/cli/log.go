// Package cli implements the depviz command-line interface.
//
// This package provides commands for resolving Maven dependency graphs,
// rendering previously exported graphs, and managing the response cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - graph: Resolve a dependency graph from a Maven repository or a local test file
//   - render: Generate DOT, SVG or PNG output from an exported graph.json
//   - cache: Manage the response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; each graph run adds its own run id field.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger returns a leveled logger writing to w with wall-clock timestamps
// at centisecond precision. Debug logging also reports the call site.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
	})
}

// stopwatch returns a function that logs msg at info level together with the
// time elapsed since stopwatch was called.
func stopwatch(l *log.Logger) func(msg string) {
	start := time.Now()
	return func(msg string) {
		l.Info(msg, "took", time.Since(start).Round(time.Millisecond))
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to the package default logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withRun tags the context logger with a short random id so that the lines of
// one graph run can be told apart in shared logs.
func withRun(ctx context.Context) (context.Context, *log.Logger) {
	l := loggerFromContext(ctx).With("run", uuid.NewString()[:8])
	return withLogger(ctx, l), l
}
