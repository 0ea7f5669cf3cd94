package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the analytics engine
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeUpstream   = "UPSTREAM_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// NewValidationError creates a validation error (malformed or out-of-enum input)
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewUpstreamError creates an upstream fetch error. The original cause is
// expected to be logged by the caller and never exposed to API clients.
func NewUpstreamError(message string) *DomainError {
	return NewDomainError(ErrCodeUpstream, message)
}
