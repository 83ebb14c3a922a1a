package profile

import "errors"

var (
	// ErrNotFound is returned when no profile matches the id.
	ErrNotFound = errors.New("profile: not found")

	// ErrFailedToLoad is returned when a read query fails.
	ErrFailedToLoad = errors.New("profile: failed to load")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("profile: failed to save")
)
