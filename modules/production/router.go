package production

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
)

// Router exposes the batch service as a JSON surface.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		f := Filter{
			Status: Status(req.URL.Query().Get("status")),
			Search: req.URL.Query().Get("search"),
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

		b, err := svc.Get(req.Context(), id)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusOK, b)
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var in Input
		if !api.Decode(w, req, &in) {
			return
		}

		b, err := svc.Plan(req.Context(), in)
		if err != nil {
			api.Error(w, req, log, err, ErrNotFound)
			return
		}
		api.JSON(w, http.StatusCreated, b)
	})

	r.Post("/{id}/start", transition(log, func(req *http.Request, id uuid.UUID) (Batch, error) {
		return svc.Start(req.Context(), id)
	}))

	r.Post("/{id}/complete", func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		var in CompleteInput
		if !api.Decode(w, req, &in) {
			return
		}

		b, err := svc.Complete(req.Context(), id, in)
		if err != nil {
			writeError(w, req, log, err)
			return
		}
		api.JSON(w, http.StatusOK, b)
	})

	r.Post("/{id}/cancel", transition(log, func(req *http.Request, id uuid.UUID) (Batch, error) {
		return svc.Cancel(req.Context(), id)
	}))

	return r
}

func transition(log *slog.Logger, fn func(*http.Request, uuid.UUID) (Batch, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}

		b, err := fn(req, id)
		if err != nil {
			writeError(w, req, log, err)
			return
		}
		api.JSON(w, http.StatusOK, b)
	}
}

// writeError adds the 409 case for rejected status transitions on top of
// the shared error mapping.
func writeError(w http.ResponseWriter, req *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, ErrInvalidTransition) {
		api.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	api.Error(w, req, log, err, ErrNotFound)
}
