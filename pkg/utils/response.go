package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes an arbitrary payload as JSON.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondData wraps data in the {success, data} envelope the frontend expects.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// RespondError sends a failure envelope with a short error code and an
// optional human-readable message.
func RespondError(w http.ResponseWriter, status int, errMsg string, detail ...string) {
	payload := map[string]interface{}{
		"success": false,
		"error":   errMsg,
	}
	if len(detail) > 0 && detail[0] != "" {
		payload["message"] = detail[0]
	}
	RespondJSON(w, status, payload)
}
