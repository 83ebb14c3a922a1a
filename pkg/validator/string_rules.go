package validator

import (
	"fmt"
	"strings"
)

// Required fails when the value is absent: nil, an empty or whitespace-only
// string, or an empty collection. It also short-circuits the remaining rules
// on the field, so an empty required field reports exactly one error.
func Required() Rule {
	return Rule{
		kind:    kindRequired,
		check:   func(value any) bool { return !isEmpty(value) },
		message: "field is required",
	}
}

// asText extracts the string form of a value for length checks. Only real
// strings qualify; numbers and collections do not have a text length.
func asText(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// MinLen validates that a string value is at least min characters long.
func MinLen(min int) Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			return ok && len(s) >= min
		},
		message: fmt.Sprintf("must be at least %d characters long", min),
	}
}

// MaxLen validates that a string value is at most max characters long.
func MaxLen(max int) Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			return ok && len(s) <= max
		},
		message: fmt.Sprintf("must be at most %d characters long", max),
	}
}

// OneOf validates that a string value is one of the allowed choices.
// Comparison is case-sensitive; choice lists are short enough that a linear
// scan beats building a set per rule.
func OneOf(choices ...string) Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			s, ok := asText(value)
			if !ok {
				return false
			}
			for _, c := range choices {
				if s == c {
					return true
				}
			}
			return false
		},
		message: fmt.Sprintf("must be one of: %s", strings.Join(choices, ", ")),
	}
}
