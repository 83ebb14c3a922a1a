package finance

import "errors"

var (
	// ErrNotFound is returned when no invoice or credit note matches the id.
	ErrNotFound = errors.New("finance: not found")

	// ErrExceedsInvoice is returned when a credit note is larger than the
	// invoice it refunds.
	ErrExceedsInvoice = errors.New("finance: credit note exceeds invoice amount")

	// ErrFailedToList is returned when a read query fails.
	ErrFailedToList = errors.New("finance: failed to list")

	// ErrFailedToSave is returned when a write query fails.
	ErrFailedToSave = errors.New("finance: failed to save")
)
