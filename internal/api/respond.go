package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/authz"
	"github.com/SuriyaVG/GSR-Operations-sub004/pkg/validator"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error  string                     `json:"error"`
	Fields validator.ValidationErrors `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error translates service errors into HTTP responses: validation failures
// become 422 with per-field details, denied permissions 403, not-found
// sentinels 404, everything else a logged 500 with a generic body.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound error) {
	if verrs := validator.AsValidationErrors(err); verrs != nil {
		JSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Fields: verrs})
		return
	}
	if errors.Is(err, authz.ErrPermissionDenied) {
		JSON(w, http.StatusForbidden, errorBody{Error: "permission denied"})
		return
	}
	if notFound != nil && errors.Is(err, notFound) {
		JSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}

	log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

// Decode reads a JSON request body into v. A malformed body is a client
// error reported directly; handlers just return on false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		JSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return false
	}
	return true
}
