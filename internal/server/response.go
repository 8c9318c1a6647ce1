// Package server implements a stub channeling backend for local development
// and demos. It serves the same REST contract the production platform does,
// over in-memory fixture data.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// envelope is the platform's standard wrapper for collection and action
// responses.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeData writes a success envelope with the given payload.
func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope{Code: 200, Message: "OK", Data: data}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeFailure writes a non-2xx response carrying a human-readable message.
func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeJSON writes a bare JSON payload, used by the login endpoint whose
// success body is flat rather than enveloped.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
