package chi

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced in the failure envelope.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL_ERROR"
)

// The portal web and chat UIs switch on the success flag, not on the HTTP
// status: every envelope (including NOT_FOUND and INTERNAL_ERROR) ships
// with 200. Only /healthz uses status codes, for load balancers.

type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, message, code string) {
	writeJSON(w, http.StatusOK, errorEnvelope{Success: false, Message: message, ErrorCode: code})
}
