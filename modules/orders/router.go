package orders

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
)

// Router exposes the order service as a JSON surface.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		f := Filter{
			Status: Status(req.URL.Query().Get("status")),
		}
		if raw := req.URL.Query().Get("customer_id"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				f.CustomerID = id
			}
		}
		if raw := req.URL.Query().Get("created_after"); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				f.CreatedAfter = t
			}
		}
		if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil {
			f.Limit = limit
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

		o, err := svc.Get(req.Context(), id)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, o)
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var in Input
		if !api.Decode(w, req, &in) {
			return
		}

		o, err := svc.Create(req.Context(), in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusCreated, o)
	})

	r.Put("/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		var body struct {
			Status Status `json:"status"`
		}
		if !api.Decode(w, req, &body) {
			return
		}

		o, err := svc.SetStatus(req.Context(), id, body.Status)
		if err != nil {
			if errors.Is(err, ErrUnknownStatus) {
				api.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, o)
	})

	return r
}
