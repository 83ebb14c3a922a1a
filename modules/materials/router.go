package materials

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
)

// Router exposes the intake service as a JSON surface.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		f := Filter{
			Supplier: req.URL.Query().Get("supplier"),
			Material: req.URL.Query().Get("material"),
		}
		if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil {
			f.Limit = limit
		}
		if raw := req.URL.Query().Get("received_after"); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				f.ReceivedAfter = t
			}
		}

		list, err := svc.List(req.Context(), f)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, list)
	})

	r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		it, err := svc.Get(req.Context(), id)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, it)
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var in Input
		if !api.Decode(w, req, &in) {
			return
		}

		it, err := svc.Log(req.Context(), in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusCreated, it)
	})

	return r
}
