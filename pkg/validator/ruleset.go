package validator

import "fmt"

// fieldRules holds the ordered rules declared for one field.
type fieldRules struct {
	name  string
	rules []Rule
}

// validate evaluates the field's rules against a value and returns the first
// failure message, or "" when the value passes every rule.
//
// Presence is settled first: an empty value on a required field fails with
// the required message before any other rule runs, and an empty value on an
// optional field passes outright so length, range, and pattern rules never
// see it. Non-empty values run check rules in declaration order, then custom
// rules in declaration order. The first failure wins.
func (fr fieldRules) validate(value any) string {
	var required *Rule
	for i := range fr.rules {
		if fr.rules[i].kind == kindRequired {
			required = &fr.rules[i]
			break
		}
	}

	if isEmpty(value) {
		if required != nil {
			return required.apply(value)
		}
		return ""
	}

	for _, r := range fr.rules {
		if r.kind != kindCheck {
			continue
		}
		if msg := r.apply(value); msg != "" {
			return msg
		}
	}
	for _, r := range fr.rules {
		if r.kind != kindCustom {
			continue
		}
		if msg := r.apply(value); msg != "" {
			return msg
		}
	}
	return ""
}

// RuleSet maps field names to their validation rules. Declaration order is
// preserved and drives the order of ValidateForm output. A RuleSet is built
// once when a form is declared and is immutable afterwards, so it is safe to
// share across goroutines.
type RuleSet struct {
	fields []fieldRules
	index  map[string]int
}

// NewRuleSet returns an empty rule-set ready for Field declarations.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// Field declares validation rules for a named field and returns the rule-set
// for chaining. Declaring the same field twice is a programming error and
// panics immediately rather than silently merging or shadowing rules.
func (rs *RuleSet) Field(name string, rules ...Rule) *RuleSet {
	if name == "" {
		panic("validator: rule-set field name must not be empty")
	}
	if _, exists := rs.index[name]; exists {
		panic(fmt.Sprintf("validator: field %q declared twice in rule-set", name))
	}
	rs.index[name] = len(rs.fields)
	rs.fields = append(rs.fields, fieldRules{name: name, rules: rules})
	return rs
}

// Has reports whether the field is declared in the rule-set.
func (rs *RuleSet) Has(name string) bool {
	_, ok := rs.index[name]
	return ok
}

// Fields returns the declared field names in declaration order.
func (rs *RuleSet) Fields() []string {
	names := make([]string, 0, len(rs.fields))
	for _, fr := range rs.fields {
		names = append(names, fr.name)
	}
	return names
}

// ValidateField checks a single value against the rules declared for the
// field and returns the first failure message, or "" when the value passes.
// Referencing an undeclared field is a programming error and panics.
func (rs *RuleSet) ValidateField(name string, value any) string {
	i, ok := rs.index[name]
	if !ok {
		panic(fmt.Sprintf("validator: field %q not declared in rule-set", name))
	}
	return rs.fields[i].validate(value)
}

// Result is the outcome of a full-form validation pass.
type Result struct {
	Valid  bool
	Errors ValidationErrors
}

// ValidateForm checks every declared field against the record and returns
// the collected errors in declaration order. Record keys without a declared
// rule are ignored; declared fields missing from the record validate their
// zero (absent) value, so a missing required field still fails.
func (rs *RuleSet) ValidateForm(record map[string]any) Result {
	var errs ValidationErrors
	for _, fr := range rs.fields {
		if msg := fr.validate(record[fr.name]); msg != "" {
			errs = append(errs, ValidationError{Field: fr.name, Message: msg})
		}
	}
	return Result{Valid: errs.IsEmpty(), Errors: errs}
}
