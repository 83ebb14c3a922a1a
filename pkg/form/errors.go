package form

import "errors"

var (
	// ErrUnknownField is returned when a field name is not declared in the
	// form's rule-set.
	ErrUnknownField = errors.New("form: unknown field")
)
