// Package httpx provides JSON response and request-decoding utilities
// shared by all resource handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// errorBody is the wire shape carried inside every error envelope.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends the API error envelope {"error":{"message":...,"status":...}}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorEnvelope{Error: errorBody{Message: message, Status: status}})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
