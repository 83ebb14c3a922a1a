package logger

import "log/slog"

// Error returns a standard attribute for error values, keeping the key
// consistent across the codebase. Nil errors produce an empty attribute that
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component tags records with the subsystem that emitted them.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
