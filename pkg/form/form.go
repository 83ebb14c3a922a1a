package form

import (
	"sync"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// Field is the tracked state of one form input.
type Field struct {
	Value   any
	Error   string
	Touched bool
}

// Form tracks per-field state (value, error, touched) for one form instance
// and delegates validation to its rule-set. The rule-set's declared fields
// are the authoritative key list: values for undeclared fields are never
// stored.
//
// All state transitions happen under one mutex, so a reader never observes a
// partially applied update. Forms are independent; nothing is shared between
// instances.
type Form struct {
	mu      sync.Mutex
	rules   *validator.RuleSet
	initial map[string]any
	fields  map[string]Field

	validateOnChange bool
	validateOnBlur   bool
}

// New creates a form over the rule-set, seeding declared fields from the
// initial values. Initial values for undeclared fields are ignored. The
// initial map is copied and kept for Reset.
func New(rules *validator.RuleSet, initial map[string]any, opts ...Option) *Form {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Form{
		rules:            rules,
		initial:          copyValues(initial),
		validateOnChange: cfg.validateOnChange,
		validateOnBlur:   cfg.validateOnBlur,
	}
	f.fields = f.seed(f.initial)
	return f
}

// seed builds a fresh field map from the given values, with clear errors and
// touched flags.
func (f *Form) seed(values map[string]any) map[string]Field {
	fields := make(map[string]Field, len(f.rules.Fields()))
	for _, name := range f.rules.Fields() {
		fields[name] = Field{Value: values[name]}
	}
	return fields
}

// SetValue updates a field's value and marks it touched. When
// validate-on-change is enabled the field is re-validated as part of the
// same update, so callers never observe the new value with a stale error.
// Setting an undeclared field returns ErrUnknownField and changes nothing.
func (f *Form) SetValue(name string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	if !ok {
		return ErrUnknownField
	}

	field.Value = value
	field.Touched = true
	if f.validateOnChange {
		field.Error = f.rules.ValidateField(name, value)
	}
	f.fields[name] = field
	return nil
}

// Blur marks a field touched and, when validate-on-blur is enabled (the
// default), validates its current value.
func (f *Form) Blur(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	if !ok {
		return ErrUnknownField
	}

	field.Touched = true
	if f.validateOnBlur {
		field.Error = f.rules.ValidateField(name, field.Value)
	}
	f.fields[name] = field
	return nil
}

// Validate runs full-form validation over the current values and replaces
// every field's error in one atomic clear-then-set pass, so the stored
// errors are never a mix of old and new results. Returns overall validity.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := f.rules.ValidateForm(f.valuesLocked())
	for name, field := range f.fields {
		field.Error = res.Errors.Get(name)
		f.fields[name] = field
	}
	return res.Valid
}

// Valid reports whether the current values satisfy the rule-set. It is
// derived by re-running validation, not by inspecting stored error flags, so
// an untouched field with an unmet required rule makes the form invalid
// before any interaction. No field state is modified.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.rules.ValidateForm(f.valuesLocked()).Valid
}

// Reset replaces the entire field set, clearing all errors and touched
// flags. Overrides are merged over the original initial values; the merge
// does not alter what a later Reset starts from.
func (f *Form) Reset(overrides map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := copyValues(f.initial)
	for name, v := range overrides {
		if f.rules.Has(name) {
			values[name] = v
		}
	}
	f.fields = f.seed(values)
}

// Field returns the tracked state for a declared field.
func (f *Form) Field(name string) (Field, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	return field, ok
}

// Values returns a snapshot copy of the current field values.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.valuesLocked()
}

// Errors returns the currently stored field errors in rule-set declaration
// order. Only fields whose last validation failed appear.
func (f *Form) Errors() validator.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs validator.ValidationErrors
	for _, name := range f.rules.Fields() {
		if field := f.fields[name]; field.Error != "" {
			errs = append(errs, validator.ValidationError{Field: name, Message: field.Error})
		}
	}
	return errs
}

func (f *Form) valuesLocked() map[string]any {
	values := make(map[string]any, len(f.fields))
	for name, field := range f.fields {
		values[name] = field.Value
	}
	return values
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
