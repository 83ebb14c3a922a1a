package validator

import (
	"fmt"
	"regexp"
)

// Shared patterns for common field formats. Phone numbers follow E.164 with
// an optional leading plus.
var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Matches validates a string value against a regular expression. The pattern
// is compiled once at rule construction; an invalid pattern is a programming
// error and panics immediately rather than surfacing at validation time.
func Matches(pattern, description string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			return ok && regex.MatchString(s)
		},
		message: fmt.Sprintf("must be a valid %s", description),
	}
}

// Email validates that a string value looks like an email address.
func Email() Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			return ok && emailRegex.MatchString(s)
		},
		message: "must be a valid email address",
	}
}

// Phone validates that a string value looks like an international phone
// number.
func Phone() Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			return ok && phoneRegex.MatchString(s)
		},
		message: "must be a valid phone number",
	}
}
