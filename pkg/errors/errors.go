package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Caller errors
	ErrorTypeValidation  ErrorType = "VALIDATION"
	ErrorTypeInvalidMode ErrorType = "INVALID_MODE"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"

	// Store errors
	ErrorTypeStoreUnavailable ErrorType = "STORE_UNAVAILABLE"
	ErrorTypeQueryFailed      ErrorType = "QUERY_FAILED"

	// Processing errors
	ErrorTypeMaterialization ErrorType = "MATERIALIZATION"
	ErrorTypeInternal        ErrorType = "INTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidModeError reports an unsupported type/layout selector value
func NewInvalidModeError(param, value string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidMode,
		Message:    fmt.Sprintf("parameter '%s' has unsupported value '%s'", param, value),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewStoreUnavailableError reports a missing store connection
func NewStoreUnavailableError() *AppError {
	return &AppError{
		Type:       ErrorTypeStoreUnavailable,
		Message:    "graph store is not connected",
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// NewQueryFailedError wraps a store-side query failure. The store's own
// message is surfaced to the caller; nothing else is.
func NewQueryFailedError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypeQueryFailed,
		Message:    fmt.Sprintf("graph store query failed: %v", err),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewMaterializationError reports a raw result that no longer matches the
// materializer's structural assumptions. Fatal, never degraded.
func NewMaterializationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeMaterialization,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsValidation checks if an error is a caller input error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation) || IsType(err, ErrorTypeInvalidMode)
}

// IsStoreUnavailable checks if an error is a store connection error
func IsStoreUnavailable(err error) bool {
	return IsType(err, ErrorTypeStoreUnavailable)
}

// IsQueryFailed checks if an error is a store query error
func IsQueryFailed(err error) bool {
	return IsType(err, ErrorTypeQueryFailed)
}

// IsMaterialization checks if an error is a materialization error
func IsMaterialization(err error) bool {
	return IsType(err, ErrorTypeMaterialization)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
