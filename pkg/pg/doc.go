// Package pg wires the application to PostgreSQL: a pgxpool connection with
// retrying startup, goose SQL migrations bridged through the pgx stdlib
// adapter, and a readiness probe. Configuration comes from the environment
// via pkg/config.
package pg
