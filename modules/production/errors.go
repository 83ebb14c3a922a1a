package production

import "errors"

var (
	// ErrNotFound is returned when no batch matches the id.
	ErrNotFound = errors.New("production: not found")

	// ErrInvalidTransition is returned when a status change is not allowed
	// from the batch's current state.
	ErrInvalidTransition = errors.New("production: invalid status transition")

	// ErrFailedToList is returned when a read query fails.
	ErrFailedToList = errors.New("production: failed to list")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("production: failed to save")
)
