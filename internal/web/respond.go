// Package web holds the shared JSON response helpers and the centralized
// error writer used by every handler.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// ServerError normalizes unexpected store and hashing failures into a 500.
// The underlying detail is logged always, but only echoed to the client
// outside production.
func ServerError(w http.ResponseWriter, err error, production bool) {
	slog.Error("request failed", "error", err)
	body := map[string]string{"message": "Error with the server"}
	if !production {
		body["error"] = err.Error()
	}
	JSON(w, http.StatusInternalServerError, body)
}
