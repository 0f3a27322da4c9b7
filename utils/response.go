// utils/response.go
package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes payload as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondError writes the standard error body: a message and, when an
// underlying error is available, its text under "error".
func RespondError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	RespondJSON(w, status, body)
}
