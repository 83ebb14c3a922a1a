package materials

import "errors"

var (
	// ErrNotFound is returned when no intake entry matches the id.
	ErrNotFound = errors.New("materials: not found")

	// ErrFailedToList is returned when a read query fails.
	ErrFailedToList = errors.New("materials: failed to list")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("materials: failed to save")
)
