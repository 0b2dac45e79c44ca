// Package obslog provides critic's single structured logging entry
// point: a log/slog logger configured from Verbose, writing
// human-readable text to stderr.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing to w (os.Stderr in production) at
// LevelDebug when verbose is set, LevelInfo otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDefault is New(os.Stderr, verbose).
func NewDefault(verbose bool) *slog.Logger {
	return New(os.Stderr, verbose)
}

type ctxKey struct{}

// NewContext returns a context carrying logger, for a root command's
// PersistentPreRunE to stash the request-scoped logger where subcommands
// can reach it without each one reconstructing it from Config.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext retrieves the logger stashed by NewContext, or slog's
// default logger if none was stashed (e.g. in tests that never call
// PersistentPreRunE).
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
