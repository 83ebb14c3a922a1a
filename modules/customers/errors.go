package customers

import "errors"

var (
	// ErrNotFound is returned when no customer matches the id.
	ErrNotFound = errors.New("customers: not found")

	// ErrFailedToList is returned when a read query fails.
	ErrFailedToList = errors.New("customers: failed to list")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("customers: failed to save")
)
