package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().Field("email", validator.Email())

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "plain address", value: "ops@gsr.example.com", valid: true},
		{name: "plus tag", value: "ops+intake@gsr.in", valid: true},
		{name: "missing at sign", value: "bad", valid: false},
		{name: "missing domain", value: "user@", valid: false},
		{name: "missing tld", value: "user@host", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := rules.ValidateField("email", tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, "must be a valid email address", msg)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().Field("phone", validator.Phone())

	assert.Empty(t, rules.ValidateField("phone", "+919876543210"))
	assert.Empty(t, rules.ValidateField("phone", "9876543210"))
	assert.Equal(t, "must be a valid phone number", rules.ValidateField("phone", "98-76"))
	assert.Equal(t, "must be a valid phone number", rules.ValidateField("phone", "0123"))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().
		Field("batch_code", validator.Matches(`^GR\d{4}$`, "batch code"))

	assert.Empty(t, rules.ValidateField("batch_code", "GR0042"))
	assert.Equal(t, "must be a valid batch code", rules.ValidateField("batch_code", "42"))

	t.Run("non-string fails", func(t *testing.T) {
		assert.Equal(t, "must be a valid batch code", rules.ValidateField("batch_code", 42))
	})
}
