package validator

import "fmt"

// numericRule builds a check rule that first insists the value parses as a
// number, then applies the bound. Non-numeric input fails with the parse
// message rather than silently passing the comparison.
func numericRule(bound func(n float64) bool, message string) Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			n, ok := toNumber(value)
			return ok && bound(n)
		},
		message: message,
	}
}

// Numeric validates that the value parses as a number. Useful on its own for
// fields where any numeric value is acceptable but text is not.
func Numeric() Rule {
	return Rule{
		kind: kindCheck,
		check: func(value any) bool {
			_, ok := toNumber(value)
			return ok
		},
		message: "must be a valid number",
	}
}

// Min validates that a numeric value is greater than or equal to min.
func Min(min float64) Rule {
	return numericRule(
		func(n float64) bool { return n >= min },
		fmt.Sprintf("must be at least %v", min),
	)
}

// Max validates that a numeric value is less than or equal to max.
func Max(max float64) Rule {
	return numericRule(
		func(n float64) bool { return n <= max },
		fmt.Sprintf("must be at most %v", max),
	)
}

// Positive validates that a numeric value is strictly greater than zero.
// Zero and negative values fail; so does anything that does not parse as a
// number, with a message that names the parse failure.
func Positive() Rule {
	return Rule{
		kind: kindCustom,
		custom: func(value any) string {
			n, ok := toNumber(value)
			if !ok {
				return "must be a valid number"
			}
			if n <= 0 {
				return "must be greater than 0"
			}
			return ""
		},
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative() Rule {
	return Rule{
		kind: kindCustom,
		custom: func(value any) string {
			n, ok := toNumber(value)
			if !ok {
				return "must be a valid number"
			}
			if n < 0 {
				return "must not be negative"
			}
			return ""
		},
	}
}
