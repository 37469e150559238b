// Package errors defines application-level error types that carry HTTP
// status and business error codes across the delivery boundary.
package errors

import (
	"net/http"

	"mihrab/internal/errors"
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

// Predefined error types
var (
	// ErrDeviceNotFound indicates the device token is not registered.
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device is not registered",
		"",
	)

	// ErrEventNotFound indicates the requested event does not exist.
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	// ErrSurahNotFound indicates the requested surah does not exist.
	ErrSurahNotFound = NewBaseError(
		http.StatusNotFound,
		"SURAH_NOT_FOUND",
		"Surah not found",
		"",
	)

	// ErrAyahNotFound indicates the requested ayah does not exist.
	ErrAyahNotFound = NewBaseError(
		http.StatusNotFound,
		"AYAH_NOT_FOUND",
		"Ayah not found",
		"",
	)

	// ErrNotificationNotFound indicates the scheduled notification does not exist.
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Scheduled notification not found",
		"",
	)

	// ErrUpstreamUnavailable indicates an external provider call failed.
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"External provider is unavailable",
		"",
	)
)

// DatabaseError wraps low-level persistence failures so handlers can map
// them to a generic 500 without leaking driver details.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseExecuteError creates a database error with the underlying cause
func NewDatabaseExecuteError(cause error, message string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_ERROR",
			message,
			"",
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
