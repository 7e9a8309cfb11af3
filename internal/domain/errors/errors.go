// Package errors defines the application error model: a small interface the
// delivery layer can map onto HTTP responses, plus the predefined error kinds
// the rest of the code wraps.
package errors

import (
	"net/http"

	"finboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds. The four remote-call failure modes (unreachable,
// auth rejected, remote validation, malformed payload) each get a distinct
// value so callers can branch on them with errors.Is.
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"You must be signed in to access this resource",
		"",
	)

	ErrSessionLoading = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_LOADING",
		"The session is still being restored, try again shortly",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Remote API call failure modes
	ErrAPIUnreachable = NewBaseError(
		http.StatusBadGateway,
		"API_UNREACHABLE",
		"Could not reach the finance API",
		"",
	)

	ErrAuthRejected = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REJECTED",
		"The finance API rejected the session credential",
		"",
	)

	ErrRemoteRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"REMOTE_REJECTED",
		"The finance API rejected the request",
		"",
	)

	ErrDecodeFailed = NewBaseError(
		http.StatusBadGateway,
		"DECODE_FAILED",
		"The finance API returned a malformed response",
		"",
	)

	// Input validation errors raised before any remote call is made
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
