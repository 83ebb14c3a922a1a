package form

// Option configures validation timing for a form instance.
type Option func(*options)

type options struct {
	validateOnChange bool
	validateOnBlur   bool
}

// Validate-on-blur is on by default; validate-on-change is opt-in because
// per-keystroke errors are hostile while a value is still being typed.
func defaultOptions() options {
	return options{validateOnBlur: true}
}

// WithValidateOnChange controls whether SetValue validates the field
// immediately.
func WithValidateOnChange(enabled bool) Option {
	return func(o *options) { o.validateOnChange = enabled }
}

// WithValidateOnBlur controls whether Blur validates the field.
func WithValidateOnBlur(enabled bool) Option {
	return func(o *options) { o.validateOnBlur = enabled }
}
