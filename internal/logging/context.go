package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithCommand creates a child logger with a command field
func WithCommand(ctx context.Context, command string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("command", command).Logger()
	return WithContext(ctx, childLogger)
}

// WithScope creates a child logger with a scope field
func WithScope(ctx context.Context, scope string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("scope", scope).Logger()
	return WithContext(ctx, childLogger)
}
