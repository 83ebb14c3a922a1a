package validator

import "errors"

// Common validation errors for callers that match on error identity rather
// than field messages.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")
)

// AsValidationErrors extracts structured field errors from an error return.
// Returns nil when err does not carry validation details.
func AsValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
