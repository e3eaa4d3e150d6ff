package common

import (
	"encoding/json"
	"net/http"

	apperrors "pipeline-backend/pkg/errors"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ErrorResponse is the envelope for boundary failures.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RespondJSON sends a JSON response with the given status. The payload is
// written verbatim, without a wrapper, so handlers control the exact shape
// clients see.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error:   true,
		Message: message,
		Code:    status,
	})
}

// RespondAppError sends an error response for an application error. The
// status comes from the error's type; the message is the AppError message
// without the type prefix or cause chain.
func RespondAppError(w http.ResponseWriter, err error) {
	message := err.Error()
	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.Message
	}
	RespondError(w, apperrors.HTTPStatusOf(err), message)
}

// ParseJSONBody parses a JSON request body with a size limit. Unknown fields
// are tolerated: node payloads carry arbitrary presentation data the service
// has no schema for.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// ExtractRequestID extracts the request ID from the request, generating one
// when neither the headers nor the chi middleware supplied it.
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := chimiddleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.New().String()
}
