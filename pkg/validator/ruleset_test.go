package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

func TestRuleSet_ValidateField(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet().
		Field("name", validator.Required(), validator.MinLen(2)).
		Field("notes", validator.MaxLen(10))

	t.Run("valid value passes", func(t *testing.T) {
		assert.Empty(t, rules.ValidateField("name", "Alice"))
	})

	t.Run("required short-circuits length check", func(t *testing.T) {
		msg := rules.ValidateField("name", "")
		assert.Equal(t, "field is required", msg)
	})

	t.Run("length check runs for non-empty value", func(t *testing.T) {
		msg := rules.ValidateField("name", "A")
		assert.Equal(t, "must be at least 2 characters long", msg)
	})

	t.Run("empty optional field passes without running other rules", func(t *testing.T) {
		assert.Empty(t, rules.ValidateField("notes", ""))
		assert.Empty(t, rules.ValidateField("notes", nil))
	})

	t.Run("optional field still validated when present", func(t *testing.T) {
		msg := rules.ValidateField("notes", "way too long for ten")
		assert.Equal(t, "must be at most 10 characters long", msg)
	})

	t.Run("unknown field panics", func(t *testing.T) {
		assert.Panics(t, func() {
			rules.ValidateField("missing", "x")
		})
	})
}

func TestRuleSet_Construction(t *testing.T) {
	t.Parallel()

	t.Run("duplicate field panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.NewRuleSet().
				Field("name", validator.Required()).
				Field("name", validator.MinLen(2))
		})
	})

	t.Run("empty field name panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.NewRuleSet().Field("")
		})
	})

	t.Run("invalid pattern panics at construction", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Matches(`[unclosed`, "broken")
		})
	})

	t.Run("fields preserve declaration order", func(t *testing.T) {
		rules := validator.NewRuleSet().
			Field("c").
			Field("a").
			Field("b")
		assert.Equal(t, []string{"c", "a", "b"}, rules.Fields())
	})
}

func TestRuleSet_ValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("errors follow declaration order", func(t *testing.T) {
		rules := validator.NewRuleSet().
			Field("name", validator.Required()).
			Field("email", validator.Required(), validator.Email())

		res := rules.ValidateForm(map[string]any{"name": "", "email": "bad"})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, "name", res.Errors[0].Field)
		assert.Equal(t, "field is required", res.Errors[0].Message)
		assert.Equal(t, "email", res.Errors[1].Field)
		assert.Equal(t, "must be a valid email address", res.Errors[1].Message)
	})

	t.Run("valid iff every field passes", func(t *testing.T) {
		rules := validator.NewRuleSet().
			Field("name", validator.Required()).
			Field("qty", validator.Required(), validator.Positive())

		record := map[string]any{"name": "Ghee 500ml", "qty": 12}
		res := rules.ValidateForm(record)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)

		for _, f := range rules.Fields() {
			assert.Empty(t, rules.ValidateField(f, record[f]))
		}
	})

	t.Run("idempotent for unchanged input", func(t *testing.T) {
		rules := validator.NewRuleSet().
			Field("name", validator.Required(), validator.MinLen(5)).
			Field("cost", validator.Positive())

		record := map[string]any{"name": "ab", "cost": -1}
		first := rules.ValidateForm(record)
		second := rules.ValidateForm(record)
		assert.Equal(t, first, second)
	})

	t.Run("undeclared record keys are ignored", func(t *testing.T) {
		rules := validator.NewRuleSet().Field("name", validator.Required())

		res := rules.ValidateForm(map[string]any{
			"name":       "ok",
			"unexpected": "",
		})
		assert.True(t, res.Valid)
	})

	t.Run("declared field missing from record fails required", func(t *testing.T) {
		rules := validator.NewRuleSet().Field("name", validator.Required())

		res := rules.ValidateForm(map[string]any{})
		require.False(t, res.Valid)
		assert.Equal(t, "name", res.Errors[0].Field)
	})

	t.Run("custom rules run after built-in checks", func(t *testing.T) {
		rules := validator.NewRuleSet().Field("code",
			validator.Custom(func(any) string { return "custom failure" }),
			validator.MinLen(4),
		)

		msg := rules.ValidateField("code", "ab")
		assert.Equal(t, "must be at least 4 characters long", msg)
	})
}
