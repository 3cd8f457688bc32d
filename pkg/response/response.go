// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/a48zhang/AIditor/pkg/apperror"
	"github.com/a48zhang/AIditor/pkg/logger"
)

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}

func Success(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Error: msg})
}

// Error maps err onto its HTTP status and writes the failure envelope.
func Error(w http.ResponseWriter, err error) {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Sugar.Errorf("Request failed: %v", err)
	}
	Fail(w, status, err.Error())
}
