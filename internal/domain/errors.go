// Package domain defines the typed errors shared by the application services
// and the HTTP layer.
package domain

import "errors"

// ErrorCode classifies an application error for HTTP mapping and logging.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "validation_error"
	CodeLocationNotFound ErrorCode = "location_not_found"
	CodeNoRouteFound     ErrorCode = "no_route_found"
	CodeInvalidRoute     ErrorCode = "invalid_route"
	CodeUpstreamTimeout  ErrorCode = "upstream_timeout"
	CodeUpstream         ErrorCode = "upstream_error"
)

// AppError is an application error with a stable code and a short
// user-facing message. The wrapped cause, when present, is for logs only and
// is never serialized to clients.
type AppError struct {
	Code    ErrorCode
	Message string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() error { return e.cause }

// NewValidationError creates an error for malformed caller input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewLocationNotFoundError creates an error for a place name that could not
// be resolved to coordinates.
func NewLocationNotFoundError(message string) *AppError {
	return &AppError{Code: CodeLocationNotFound, Message: message}
}

// NewNoRouteFoundError creates an error for a routing request that yielded
// zero candidate routes.
func NewNoRouteFoundError(message string) *AppError {
	return &AppError{Code: CodeNoRouteFound, Message: message}
}

// NewInvalidRouteError creates an error for a route input with fewer than
// two points or otherwise unusable geometry.
func NewInvalidRouteError(message string) *AppError {
	return &AppError{Code: CodeInvalidRoute, Message: message}
}

// NewUpstreamTimeoutError creates an error for an upstream call that ran out
// of its time budget.
func NewUpstreamTimeoutError(message string, cause error) *AppError {
	return &AppError{Code: CodeUpstreamTimeout, Message: message, cause: cause}
}

// NewUpstreamError creates an error for an unreachable or misbehaving
// upstream (non-2xx status, malformed payload).
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{Code: CodeUpstream, Message: message, cause: cause}
}

// CodeOf extracts the ErrorCode from err, or CodeUpstream when err is not an
// AppError (unknown failures are treated as transient server faults).
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUpstream
}

// MessageOf extracts the user-facing message from err without leaking the
// wrapped cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
