package apperr

import "net/http"

// Error codes returned to clients. Clients branch on these, so they are
// part of the API contract and must stay stable.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeDatabase       = "DATABASE_ERROR"
	CodeDuplicateEntry = "DUPLICATE_ENTRY"
	CodeInvalidRef     = "INVALID_REFERENCE"
	CodeMissingField   = "MISSING_REQUIRED_FIELD"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the TaskFlow API. It carries an
// HTTP status, a machine-readable code, a client-safe message and optional
// structured details (e.g. per-field validation failures).
//
// Cause is for server-side logging only and is never serialized to clients.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows errors.Is and errors.As to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// NewValidation creates a 400 error with optional per-field details.
func NewValidation(message string, details map[string]interface{}) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}

// NewNotFound creates a 404 error for a named resource, e.g.
// NewNotFound("Task") renders "Task not found".
func NewNotFound(resource string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// NewConflict creates a 409 error for business-rule conflicts.
func NewConflict(message string) *AppError {
	return &AppError{
		Status:  http.StatusConflict,
		Code:    CodeConflict,
		Message: message,
	}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewForbidden creates a 403 error.
func NewForbidden(message string) *AppError {
	return &AppError{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: message,
	}
}

// NewInternal creates a 500 error wrapping an unclassified failure.
func NewInternal(message string, cause error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: message,
		Cause:   cause,
	}
}
