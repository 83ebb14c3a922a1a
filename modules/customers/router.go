package customers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
)

// Router exposes the customer service as a JSON surface.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		f := Filter{
			Search:  req.URL.Query().Get("search"),
			Channel: req.URL.Query().Get("channel"),
			SortBy:  req.URL.Query().Get("sort"),
			Desc:    req.URL.Query().Get("order") == "desc",
		}
		if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil {
			f.Limit = limit
		}
		if raw := req.URL.Query().Get("active"); raw != "" {
			active := raw == "true"
			f.Active = &active
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

		c, err := svc.Get(req.Context(), id)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, c)
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var in Input
		if !api.Decode(w, req, &in) {
			return
		}

		c, err := svc.Create(req.Context(), in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusCreated, c)
	})

	r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		var in Input
		if !api.Decode(w, req, &in) {
			return
		}

		c, err := svc.Update(req.Context(), id, in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, c)
	})

	r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		if err := svc.Deactivate(req.Context(), id); err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusNoContent, nil)
	})

	return r
}
