package scopes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/scopes"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scope   string
		pattern string
		want    bool
	}{
		{name: "exact match", scope: "order.create", pattern: "order.create", want: true},
		{name: "global wildcard", scope: "anything.at.all", pattern: "*", want: true},
		{name: "namespace wildcard", scope: "finance.read", pattern: "finance.*", want: true},
		{name: "namespace wildcard deep", scope: "finance.invoice.read", pattern: "finance.*", want: true},
		{name: "namespace wildcard excludes bare namespace", scope: "finance", pattern: "finance.*", want: false},
		{name: "different action", scope: "order.create", pattern: "order.read", want: false},
		{name: "different resource", scope: "batch.create", pattern: "order.*", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scopes.Matches(tt.scope, tt.pattern))
		})
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	granted := []string{"order.read", "finance.*"}

	assert.True(t, scopes.Has(granted, "order.read"))
	assert.True(t, scopes.Has(granted, "finance.invoice_read"))
	assert.False(t, scopes.Has(granted, "order.create"))
	assert.False(t, scopes.Has(nil, "order.read"))
}

func TestHasAllHasAny(t *testing.T) {
	t.Parallel()

	granted := []string{"order.*", "customer.read"}

	t.Run("all covered", func(t *testing.T) {
		assert.True(t, scopes.HasAll(granted, []string{"order.create", "customer.read"}))
	})

	t.Run("one missing fails all", func(t *testing.T) {
		assert.False(t, scopes.HasAll(granted, []string{"order.create", "invoice.read"}))
	})

	t.Run("any succeeds on partial cover", func(t *testing.T) {
		assert.True(t, scopes.HasAny(granted, []string{"invoice.read", "order.create"}))
	})

	t.Run("any fails with no cover", func(t *testing.T) {
		assert.False(t, scopes.HasAny(granted, []string{"invoice.read", "batch.create"}))
	})

	t.Run("empty required is satisfied", func(t *testing.T) {
		assert.True(t, scopes.HasAll(granted, nil))
		assert.True(t, scopes.HasAny(granted, nil))
	})

	t.Run("wildcard grant covers everything", func(t *testing.T) {
		assert.True(t, scopes.HasAll([]string{"*"}, []string{"a.b", "c.d"}))
		assert.True(t, scopes.HasAny([]string{"*"}, []string{"a.b"}))
	})

	t.Run("empty grant covers nothing", func(t *testing.T) {
		assert.False(t, scopes.HasAll(nil, []string{"a.b"}))
		assert.False(t, scopes.HasAny(nil, []string{"a.b"}))
	})
}

func TestParseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"order.read", "finance.*"}, scopes.Parse("  order.read   finance.* "))
	assert.Nil(t, scopes.Parse("   "))
	assert.Equal(t, "order.read finance.*", scopes.String([]string{"order.read", "finance.*"}))
}

func TestJoinNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "order.create", scopes.Join("order", "create"))
	assert.Equal(t, []string{"a.b", "c.d"}, scopes.Normalize([]string{"c.d", "a.b", "c.d"}))
	assert.Nil(t, scopes.Normalize(nil))
}
