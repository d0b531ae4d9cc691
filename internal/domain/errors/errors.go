// Package errors defines application-level errors that carry both an HTTP
// status and a stable business error code for API responses.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductNotAvailable = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_AVAILABLE",
		"Product is not available",
		"",
	)

	// Request-related errors
	ErrInvalidProductID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_ID",
		"Invalid product ID",
		"",
	)

	ErrInvalidLimit = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LIMIT",
		"Invalid result limit",
		"",
	)

	// Infrastructure errors
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database failure into an AppError
// that surfaces as HTTP 500, preserving the cause for logging.
func NewDatabaseExecuteError(err error, details string) error {
	return errors.Wrap(ErrDatabaseExecute.WithDetails(details), err.Error())
}
