package redis

import "errors"

var (
	// ErrFailedToParseConnString is returned when the Redis URL is invalid.
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")

	// ErrRedisNotReady is returned when the server cannot be reached after all retries.
	ErrRedisNotReady = errors.New("redis: server not ready")

	// ErrHealthcheckFailed is returned when the ping fails.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
