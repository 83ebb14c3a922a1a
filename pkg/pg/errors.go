package pg

import "errors"

var (
	// ErrFailedToParseConfig is returned when the connection string is invalid.
	ErrFailedToParseConfig = errors.New("pg: failed to parse connection config")

	// ErrDatabaseNotReady is returned when the database cannot be reached after all retries.
	ErrDatabaseNotReady = errors.New("pg: database not ready")

	// ErrFailedToApplyMigrations is returned when goose fails to run.
	ErrFailedToApplyMigrations = errors.New("pg: failed to apply migrations")

	// ErrMigrationsPathNotProvided is returned when migrations are requested without a path.
	ErrMigrationsPathNotProvided = errors.New("pg: migrations path not provided")

	// ErrMigrationsDirNotFound is returned when the migrations directory does not exist.
	ErrMigrationsDirNotFound = errors.New("pg: migrations directory not found")

	// ErrHealthcheckFailed is returned when the database ping fails.
	ErrHealthcheckFailed = errors.New("pg: healthcheck failed")
)
