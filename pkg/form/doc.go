// Package form binds user input to validated per-field state.
//
// A Form owns one private set of Field values (value, error, touched) seeded
// from a validator.RuleSet and initial values. Edits flow through SetValue
// and Blur, which mark fields touched and validate according to the
// configured timing; Validate runs the whole rule-set and replaces all
// stored errors atomically.
//
//	rules := validator.NewRuleSet().
//	    Field("name", validator.Required()).
//	    Field("email", validator.Required(), validator.Email())
//
//	f := form.New(rules, map[string]any{"name": "", "email": ""})
//	_ = f.SetValue("email", "ops@gsr.example.com")
//	_ = f.Blur("email")
//	if f.Validate() {
//	    // persist f.Values()
//	}
//
// Valid is derived from the current values on every call, independent of
// touched flags or stored errors, so a form with an untouched empty required
// field reports invalid before the user does anything.
//
// Each Form guards its state with a mutex: individual operations are atomic
// from the caller's perspective, and sequential calls apply in call order.
// Nothing is shared between Form instances.
package form
