// Package logger builds configured log/slog loggers with environment-driven
// defaults: text at debug level for development, JSON at info level for
// staging and production. Shared attribute helpers keep field names
// consistent across components.
package logger
