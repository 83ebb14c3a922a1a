package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "name", Message: "field is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	t.Run("implements error", func(t *testing.T) {
		assert.Equal(t,
			"validation failed: name: field is required; email: must be a valid email address",
			errs.Error())
	})

	t.Run("empty collection has generic message", func(t *testing.T) {
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	})

	t.Run("has and get", func(t *testing.T) {
		assert.True(t, errs.Has("name"))
		assert.False(t, errs.Has("phone"))
		assert.Equal(t, "field is required", errs.Get("name"))
		assert.Empty(t, errs.Get("phone"))
	})

	t.Run("fields preserve order", func(t *testing.T) {
		assert.Equal(t, []string{"name", "email"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors(nil).IsEmpty())
	})
}

func TestAsValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("extracts wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "name", Message: "field is required"}}
		wrapped := fmt.Errorf("saving customer: %w", inner)

		got := validator.AsValidationErrors(wrapped)
		require.Len(t, got, 1)
		assert.Equal(t, "name", got[0].Field)
	})

	t.Run("nil for unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.AsValidationErrors(errors.New("boom")))
	})

	t.Run("nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.AsValidationErrors(nil))
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()

	t.Run("nil function panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.Custom(nil) })
	})

	t.Run("message surfaces verbatim", func(t *testing.T) {
		rules := validator.NewRuleSet().Field("gst", validator.Custom(func(v any) string {
			if s, ok := v.(string); !ok || len(s) != 15 {
				return "must be a 15 character GSTIN"
			}
			return ""
		}))

		assert.Equal(t, "must be a 15 character GSTIN", rules.ValidateField("gst", "short"))
		assert.Empty(t, rules.ValidateField("gst", "22AAAAA0000A1Z5"))
	})
}
