package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type jsonResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondRaw writes an already encoded JSON document untouched.
func RespondRaw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// RespondError sends an error JSON response.
func RespondError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("Error: %v", err)
	}
	response := &jsonResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
	sendJSONResponse(w, code, response)
}

func sendJSONResponse(w http.ResponseWriter, code int, response *jsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
