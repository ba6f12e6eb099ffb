// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, plus a helper for deriving a logger
// named after a mesh node.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// Named returns the context logger extended with a node's dotted logger
// name, so every record emitted on behalf of that node is attributable.
func Named(ctx context.Context, loggerName string) *slog.Logger {
	return FromContext(ctx).With("logger", loggerName)
}
