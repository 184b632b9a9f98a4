// Package error defines the API error payload and its HTTP encoding.
package error

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    ErrorCode `json:"code"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func encode(w http.ResponseWriter, body *Error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	return json.NewEncoder(w).Encode(body)
}

// EncodeError writes an error response for the given code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, requestID string) error {
	return encode(w, &Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: requestID,
	})
}

// EncodeValidationError writes a 422 carrying the full list of violated
// rules at once.
func EncodeValidationError(w http.ResponseWriter, messages []string, requestID string) error {
	return encode(w, &Error{
		Code:    ValidationFailed,
		Status:  ValidationFailed.StatusCode(),
		Message: "recipe failed validation",
		Details: messages,
		ErrorID: requestID,
	})
}

// EncodeInternalError writes a generic 500.
func EncodeInternalError(w http.ResponseWriter, requestID string) error {
	return EncodeError(w, InternalServerError, "internal server error", requestID)
}
