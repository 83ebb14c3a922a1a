package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
)

// UserHeader carries the authenticated user id, set by the fronting auth
// proxy after session verification.
const UserHeader = "X-User-ID"

// ProfileHydrator loads the profile snapshot for an authenticated user id.
type ProfileHydrator interface {
	Hydrate(ctx context.Context, id uuid.UUID) (authz.User, error)
}

// WithUser resolves the request's user header into a profile snapshot and
// stores it in the context. Requests without a resolvable user proceed
// without one; every permission check downstream fails closed.
func WithUser(profiles ProfileHydrator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get(UserHeader); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					if user, err := profiles.Hydrate(r.Context(), id); err == nil {
						r = r.WithContext(authz.WithUser(r.Context(), user))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
