// Package handlers implements the HTTP JSON API: authentication,
// categories, drafts (temporary posts), and published posts. Each handler
// decodes a typed request, validates it, performs one store operation,
// and maps the outcome to exactly one JSON response.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// maxBodyBytes caps request bodies. Content fields are bounded well
// below this; the limit guards against abusive payloads.
const maxBodyBytes = 1 << 20

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeMessage writes a `{"message": ...}` body. Used for both error
// responses and write confirmations, mirroring the client contract.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// serverError logs the underlying error and returns a generic 500.
// The caller never sees store or runtime details.
func serverError(w http.ResponseWriter, what string, err error) {
	slog.Error(what, "error", err)
	writeMessage(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON decodes the request body into v, enforcing the body size
// cap and rejecting malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
