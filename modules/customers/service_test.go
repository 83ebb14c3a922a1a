package customers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/modules/customers"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthz(t *testing.T) *authz.Service {
	t.Helper()
	svc, err := authz.New(context.Background(), authz.NewDefaultRoleSource())
	require.NoError(t, err)
	return svc
}

func ctxWithRole(role authz.Role) context.Context {
	return authz.WithUser(context.Background(), authz.User{
		Email: "user@gsr.example.com", Role: role, Active: true,
	})
}

func TestFilter_SQL(t *testing.T) {
	t.Parallel()

	t.Run("no filters", func(t *testing.T) {
		query, args := customers.Filter{}.SQL()
		assert.Equal(t,
			"SELECT id, name, email, phone, city, channel, active, created_at, updated_at FROM customers ORDER BY name",
			query)
		assert.Empty(t, args)
	})

	t.Run("search and channel", func(t *testing.T) {
		query, args := customers.Filter{Search: "amul", Channel: customers.ChannelDistributor}.SQL()
		assert.Contains(t, query, "(name ILIKE $1 OR email ILIKE $1)")
		assert.Contains(t, query, "channel = $2")
		assert.Equal(t, []any{"%amul%", customers.ChannelDistributor}, args)
	})

	t.Run("active flag and limit", func(t *testing.T) {
		active := true
		query, args := customers.Filter{Active: &active, Limit: 25}.SQL()
		assert.Contains(t, query, "active = $1")
		assert.Contains(t, query, "LIMIT $2")
		assert.Equal(t, []any{true, 25}, args)
	})

	t.Run("sort allow-list rejects unknown columns", func(t *testing.T) {
		query, _ := customers.Filter{SortBy: "1; DROP TABLE customers"}.SQL()
		assert.Contains(t, query, "ORDER BY name")
	})

	t.Run("descending sort", func(t *testing.T) {
		query, _ := customers.Filter{SortBy: "created_at", Desc: true}.SQL()
		assert.Contains(t, query, "ORDER BY created_at DESC")
	})
}

func TestService_PermissionGate(t *testing.T) {
	t.Parallel()

	// DB is nil: every denied operation must return before touching it.
	svc := customers.NewService(nil, newAuthz(t), discardLogger())

	t.Run("viewer cannot create", func(t *testing.T) {
		_, err := svc.Create(ctxWithRole(authz.RoleViewer), customers.Input{Name: "X", Channel: customers.ChannelDirect})
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("production cannot deactivate", func(t *testing.T) {
		err := svc.Deactivate(ctxWithRole(authz.RoleProduction), uuid.Nil)
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("missing user denied", func(t *testing.T) {
		_, err := svc.List(context.Background(), customers.Filter{})
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})
}

func TestService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := customers.NewService(nil, newAuthz(t), discardLogger())
	ctx := ctxWithRole(authz.RoleSalesManager)

	t.Run("missing name and channel", func(t *testing.T) {
		_, err := svc.Create(ctx, customers.Input{Email: "bad"})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)

		assert.Equal(t, []string{"name", "email", "channel"}, verrs.Fields())
		assert.Equal(t, "field is required", verrs.Get("name"))
	})

	t.Run("invalid channel", func(t *testing.T) {
		_, err := svc.Create(ctx, customers.Input{Name: "Shop", Channel: "wholesale"})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("channel"))
	})

	t.Run("optional email and phone skipped when empty", func(t *testing.T) {
		res := customers.Rules().ValidateForm(map[string]any{
			"name":    "Corner Shop",
			"channel": customers.ChannelDirect,
		})
		assert.True(t, res.Valid)
	})
}
