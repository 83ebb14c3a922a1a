package pg

import "context"

// logger is the narrow slice of slog.Logger this package needs, kept as an
// interface so tests can capture output.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
