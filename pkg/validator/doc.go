// Package validator provides declarative, rule-set based validation for
// open-ended form records (field name → value maps).
//
// A RuleSet is declared once per form and maps field names to ordered Rule
// values. Rules are plain constraints (Required, MinLen, Matches, Positive,
// Custom, ...) that carry no field name or state of their own, so the same
// rule value can be reused across fields and forms.
//
// # Evaluation model
//
// Within a field, presence is settled first: an empty value fails with the
// required message when the field is required, and passes outright when it
// is optional. Non-empty values then run built-in checks in declaration
// order, followed by custom validators. The first failing rule wins, so a
// validation pass produces at most one error per field.
//
// Full-form validation visits every declared field (never undeclared record
// keys) in declaration order, which makes error output deterministic and
// stable across passes.
//
// # Usage
//
//	rules := validator.NewRuleSet().
//	    Field("name", validator.Required(), validator.MaxLen(120)).
//	    Field("email", validator.Required(), validator.Email()).
//	    Field("cost_per_unit", validator.Required(), validator.Positive())
//
//	res := rules.ValidateForm(record)
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        // e.Field, e.Message
//	    }
//	}
//
// # Error handling
//
// Invalid input is a normal result, not an error: ValidateField returns a
// message string and ValidateForm returns a Result. Malformed rule-sets
// (duplicate fields, invalid patterns, unknown field references) are
// programming errors and panic at construction or call time.
package validator
