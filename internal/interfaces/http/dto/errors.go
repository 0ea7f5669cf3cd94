package dto

import (
	"net/http"

	"github.com/backoffice/analytics/internal/domain/shared"
)

// ErrorResponse is the envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the client-facing message and the HTTP status that
// accompanied it.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string, status int) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Status:  status,
		},
	}
}

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.ErrCodeValidation: http.StatusBadRequest,
	shared.ErrCodeUpstream:   http.StatusInternalServerError,
	shared.ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
