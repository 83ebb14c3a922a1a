package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

func TestPositive(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().Field("cost", validator.Required(), validator.Positive())

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "rejects zero", value: 0, want: "must be greater than 0"},
		{name: "rejects negative int", value: -5, want: "must be greater than 0"},
		{name: "rejects negative float", value: -0.01, want: "must be greater than 0"},
		{name: "accepts small positive float", value: 0.01, want: ""},
		{name: "accepts positive int", value: 250, want: ""},
		{name: "accepts numeric string", value: "12.50", want: ""},
		{name: "rejects zero string", value: "0", want: "must be greater than 0"},
		{name: "rejects non-numeric string", value: "abc", want: "must be a valid number"},
		{name: "rejects boolean", value: true, want: "must be a valid number"},
		{name: "accepts decimal value", value: decimal.NewFromFloat(99.95), want: ""},
		{name: "rejects negative decimal", value: decimal.NewFromInt(-3), want: "must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ValidateField("cost", tt.value))
		})
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().
		Field("qty", validator.Min(1)).
		Field("discount", validator.Max(100))

	t.Run("min boundary inclusive", func(t *testing.T) {
		assert.Empty(t, rules.ValidateField("qty", 1))
		assert.Equal(t, "must be at least 1", rules.ValidateField("qty", 0.5))
	})

	t.Run("max boundary inclusive", func(t *testing.T) {
		assert.Empty(t, rules.ValidateField("discount", 100))
		assert.Equal(t, "must be at most 100", rules.ValidateField("discount", 101))
	})

	t.Run("non-numeric fails bound message", func(t *testing.T) {
		assert.Equal(t, "must be at least 1", rules.ValidateField("qty", "many"))
	})
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().Field("stock", validator.NonNegative())

	assert.Empty(t, rules.ValidateField("stock", 0))
	assert.Empty(t, rules.ValidateField("stock", 42))
	assert.Equal(t, "must not be negative", rules.ValidateField("stock", -1))
	assert.Equal(t, "must be a valid number", rules.ValidateField("stock", []any{1}))
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().Field("weight", validator.Numeric())

	assert.Empty(t, rules.ValidateField("weight", "3.14"))
	assert.Empty(t, rules.ValidateField("weight", int64(7)))
	assert.Equal(t, "must be a valid number", rules.ValidateField("weight", "heavy"))
}
