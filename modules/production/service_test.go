package production_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuriyaVG/GSR-Operations-sub004/modules/production"
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

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to production.Status }{
		{production.StatusPlanned, production.StatusInProgress},
		{production.StatusPlanned, production.StatusCancelled},
		{production.StatusInProgress, production.StatusCompleted},
		{production.StatusInProgress, production.StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, production.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to production.Status }{
		{production.StatusPlanned, production.StatusCompleted},
		{production.StatusCompleted, production.StatusInProgress},
		{production.StatusCompleted, production.StatusCancelled},
		{production.StatusCancelled, production.StatusInProgress},
		{production.StatusInProgress, production.StatusPlanned},
	}
	for _, tc := range denied {
		assert.False(t, production.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestFilter_SQL(t *testing.T) {
	t.Parallel()

	t.Run("no filters", func(t *testing.T) {
		query, args := production.Filter{}.SQL()
		assert.Contains(t, query, "FROM production_batches ORDER BY created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("status search and limit", func(t *testing.T) {
		query, args := production.Filter{
			Status: production.StatusInProgress,
			Search: "GB-2026",
			Limit:  5,
		}.SQL()
		assert.Contains(t, query, "status = $1")
		assert.Contains(t, query, "batch_number ILIKE $2")
		assert.Contains(t, query, "LIMIT $3")
		assert.Equal(t, []any{production.StatusInProgress, "%GB-2026%", 5}, args)
	})
}

func TestService_PermissionGate(t *testing.T) {
	t.Parallel()

	// DB is nil: every denied operation must return before touching it.
	svc := production.NewService(nil, newAuthz(t), discardLogger())

	t.Run("viewer cannot plan", func(t *testing.T) {
		_, err := svc.Plan(ctxWithRole(authz.RoleViewer), production.Input{
			BatchNumber: "GB-1", InputQuantity: "100",
		})
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("sales manager cannot start", func(t *testing.T) {
		_, err := svc.Start(ctxWithRole(authz.RoleSalesManager), uuid.Nil)
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})

	t.Run("finance cannot list", func(t *testing.T) {
		_, err := svc.List(ctxWithRole(authz.RoleFinance), production.Filter{})
		assert.ErrorIs(t, err, authz.ErrPermissionDenied)
	})
}

func TestService_PlanValidation(t *testing.T) {
	t.Parallel()

	svc := production.NewService(nil, newAuthz(t), discardLogger())
	ctx := ctxWithRole(authz.RoleProduction)

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Plan(ctx, production.Input{})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"batch_number", "input_quantity"}, verrs.Fields())
	})

	t.Run("zero input quantity rejected", func(t *testing.T) {
		_, err := svc.Plan(ctx, production.Input{BatchNumber: "GB-1", InputQuantity: "0"})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "must be greater than 0", verrs.Get("input_quantity"))
	})
}

func TestService_CompleteValidation(t *testing.T) {
	t.Parallel()

	svc := production.NewService(nil, newAuthz(t), discardLogger())
	ctx := ctxWithRole(authz.RoleProduction)

	t.Run("negative output rejected", func(t *testing.T) {
		_, err := svc.Complete(ctx, uuid.Nil, production.CompleteInput{OutputQuantity: "-5"})
		verrs := validator.AsValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "must not be negative", verrs.Get("output_quantity"))
	})

	t.Run("zero output allowed by rules", func(t *testing.T) {
		res := production.CompleteRules().ValidateForm(map[string]any{"output_quantity": "0"})
		assert.True(t, res.Valid)
	})
}
