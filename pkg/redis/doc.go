// Package redis connects the application to Redis with retrying startup and
// a readiness probe. The profile module uses it to cache hydrated user
// snapshots.
package redis
