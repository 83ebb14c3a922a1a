package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ruleKind orders rule evaluation within a field: presence checks run first,
// custom validators run last, everything else keeps declaration order.
type ruleKind int

const (
	kindRequired ruleKind = iota
	kindCheck
	kindCustom
)

// Rule is a single reusable constraint evaluated against a field value.
// Rules carry no field name and no state, so one Rule value can be attached
// to any number of fields across any number of rule-sets.
type Rule struct {
	kind ruleKind

	// check reports whether the value satisfies the constraint. Unused for
	// custom rules, which produce their message directly.
	check func(value any) bool

	// message is the static failure message for check-style rules.
	message string

	// custom returns a failure message, or "" when the value is acceptable.
	custom func(value any) string
}

// Custom wraps an application-defined validator. The function returns a
// failure message, or the empty string when the value is acceptable. Custom
// rules always run after every built-in rule on the same field.
func Custom(fn func(value any) string) Rule {
	if fn == nil {
		panic("validator: Custom called with nil function")
	}
	return Rule{kind: kindCustom, custom: fn}
}

// apply evaluates the rule against a value and returns a failure message,
// or "" when the value passes.
func (r Rule) apply(value any) string {
	if r.kind == kindCustom {
		return r.custom(value)
	}
	if r.check(value) {
		return ""
	}
	return r.message
}

// isEmpty reports whether a value counts as absent for presence checks.
// Zero numbers are NOT empty: a zero quantity must reach range and custom
// rules so it can fail with a range message rather than a required one.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

// toNumber coerces a field value into a float64 for range checks. Form
// values arrive as typed numbers from JSON decoding or as strings from text
// inputs, so both are accepted. The second return is false for anything
// that does not represent a number.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return d.InexactFloat64(), true
	}
	return 0, false
}

// ValidationError describes a single failed constraint on a named field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is an ordered collection of field errors. It implements
// the error interface so full-form failures can travel through ordinary
// error returns.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the message recorded for the field, or "" when the field
// passed. At most one error is produced per field per validation pass.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the failing field names in error order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}
