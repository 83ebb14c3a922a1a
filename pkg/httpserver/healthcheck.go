package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
)

// Probe checks one dependency; a nil error means healthy.
type Probe func(context.Context) error

// HealthcheckHandler aggregates named dependency probes into a JSON
// readiness endpoint. Any failing probe makes the endpoint return 503 with
// per-dependency status.
func HealthcheckHandler(probes map[string]Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		result := make(map[string]string, len(probes))

		for name, probe := range probes {
			if err := probe(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				result[name] = err.Error()
				continue
			}
			result[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(result)
	}
}
