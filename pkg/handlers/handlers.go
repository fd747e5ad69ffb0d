// Package handlers holds the JSON response helpers shared by every HTTP
// handler in the service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON serializes data as the response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and answers with an {"error": "..."} body. Callers
// pick the status via each package's MapHTTPStatus.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}
