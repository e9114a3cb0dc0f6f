// Package respond writes the JSON envelopes the API speaks: every payload
// carries a success flag, and failures never coerce to success.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes any payload. The payload struct is expected to embed its own
// success flag.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a failure envelope with the given message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Success: false, Message: message})
}
