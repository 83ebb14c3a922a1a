package orders_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/modules/orders"
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

func validInput() orders.Input {
	return orders.Input{
		OrderNumber: "SO-1001",
		CustomerID:  uuid.New(),
		Items: []orders.ItemInput{
			{Product: "Ghee 500ml", Quantity: "24", UnitPrice: "325.00"},
		},
	}
}

func TestFilter_SQL(t *testing.T) {
	t.Parallel()

	t.Run("no filters", func(t *testing.T) {
		query, args := orders.Filter{}.SQL()
		assert.Contains(t, query, "FROM orders ORDER BY created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		cust := uuid.New()
		after := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		query, args := orders.Filter{
			Status:       orders.StatusConfirmed,
			CustomerID:   cust,
			CreatedAfter: after,
			Limit:        20,
		}.SQL()
		assert.Contains(t, query, "status = $1")
		assert.Contains(t, query, "customer_id = $2")
		assert.Contains(t, query, "created_at >= $3")
		assert.Contains(t, query, "LIMIT $4")
		assert.Equal(t, []any{orders.StatusConfirmed, cust, after, 20}, args)
	})
}

func TestService_PermissionGate(t *testing.T) {
	t.Parallel()

	// DB is nil: every denied operation must return before touching it.
	svc := orders.NewService(nil, newAuthz(t), discardLogger())

	t.Run("viewer cannot create", func(t *testing.T) {
		_, err := svc.Create(ctxWithRole(authz.RoleViewer), validInput())
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("production cannot change status", func(t *testing.T) {
		_, err := svc.SetStatus(ctxWithRole(authz.RoleProduction), uuid.Nil, orders.StatusShipped)
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("inactive user denied everywhere", func(t *testing.T) {
		ctx := authz.WithUser(context.Background(), authz.User{
			Email: "gone@gsr.example.com", Role: authz.RoleAdmin, Active: false,
		})
		_, err := svc.List(ctx, orders.Filter{})
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})
}

func TestService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := orders.NewService(nil, newAuthz(t), discardLogger())
	ctx := ctxWithRole(authz.RoleSalesManager)

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Create(ctx, orders.Input{})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("order_number"))
		assert.True(t, verrs.Has("customer_id"))
		assert.Equal(t, "at least one item is required", verrs.Get("items"))
	})

	t.Run("line failures carry the item index", func(t *testing.T) {
		in := validInput()
		in.Items = append(in.Items, orders.ItemInput{Product: "Ghee 1l", Quantity: "0", UnitPrice: "x"})

		_, err := svc.Create(ctx, in)
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "must be greater than 0", verrs.Get("items[1].quantity"))
		assert.Equal(t, "must be a valid number", verrs.Get("items[1].unit_price"))
		assert.False(t, verrs.Has("items[0].quantity"))
	})
}

func TestService_SetStatusRejectsUnknown(t *testing.T) {
	t.Parallel()

	svc := orders.NewService(nil, newAuthz(t), discardLogger())
	_, err := svc.SetStatus(ctxWithRole(authz.RoleSalesManager), uuid.Nil, "archived")
	assert.ErrorIs(t, err, orders.ErrUnknownStatus)
}
