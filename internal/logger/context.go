package logger

import (
	"context"
	"log/slog"
)

type key struct{}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger stored by WithContext, or a discarding
// logger when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
			return logger
		}
	}
	return Discard()
}
