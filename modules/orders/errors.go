package orders

import "errors"

var (
	// ErrNotFound is returned when no order matches the id.
	ErrNotFound = errors.New("orders: not found")

	// ErrUnknownStatus is returned for a status value outside the lifecycle.
	ErrUnknownStatus = errors.New("orders: unknown status")

	// ErrFailedToList is returned when a read query fails.
	ErrFailedToList = errors.New("orders: failed to list")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("orders: failed to save")
)
