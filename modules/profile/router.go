package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
)

// Router exposes the caller's own profile. There is no id in the paths: the
// subject is always the authenticated user.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		user, ok := authz.UserFromContext(req.Context())
		if !ok {
			api.Error(w, req, log, authz.ErrPermissionDenied, ErrNotFound)
			return
		}

		p, err := svc.Get(req.Context(), user.ID)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, p)
	})

	r.Put("/", func(w http.ResponseWriter, req *http.Request) {
		user, ok := authz.UserFromContext(req.Context())
		if !ok {
			api.Error(w, req, log, authz.ErrPermissionDenied, ErrNotFound)
			return
		}

		var in UpdateInput
		if !api.Decode(w, req, &in) {
			return
		}

		p, err := svc.Update(req.Context(), user.ID, in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, p)
	})

	return r
}
