package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/whatsapp-assistant/internal/api"
)

// Common error codes used by middleware
const (
	ErrorCodeInternal       = "INTERNAL_ERROR"
	ErrorCodeUnauthorized   = "UNAUTHORIZED"
	ErrorCodeRequestTimeout = "REQUEST_TIMEOUT"
)

// Common error messages used by middleware
const (
	ErrorMessageInternal       = "An internal error occurred"
	ErrorMessageUnauthorized   = "Could not validate credentials"
	ErrorMessageRequestTimeout = "Request timeout"
)

// WriteError renders the standard error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}
