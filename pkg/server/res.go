package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// envelope is the uniform JSON response shape: success plus either payload
// fields or an error message, stamped with the response time.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, fields envelope) {
	body := envelope{
		"success":   true,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"success": false, "error": msg})
}
