package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"srinufoods/apperr"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Success writes the {success:true, ...} envelope. Extra fields are merged
// alongside success/message.
func Success(w http.ResponseWriter, statusCode int, message string, extra M) {
	resp := M{"success": true}
	if message != "" {
		resp["message"] = message
	}
	for k, v := range extra {
		resp[k] = v
	}
	RespondWithJSON(w, statusCode, resp)
}

func Fail(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, M{"success": false, "message": message})
}

// Error translates a taxonomy error into the envelope. Store errors are
// logged with detail and surfaced as a generic failure.
func Error(w http.ResponseWriter, err error) {
	if apperr.Status(err) == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	Fail(w, apperr.Status(err), apperr.Public(err))
}
