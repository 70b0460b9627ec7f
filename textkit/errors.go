// ABOUTME: Error types and handling for the Textkit library
// ABOUTME: Provides structured errors with context for library operations

package textkit

import (
	"context"
	"errors"
	"fmt"

	coreerrors "textkit/core/errors"
	"textkit/pkg/utils/html"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeParsing indicates a feed, page or markup that could not be processed
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeCanceled indicates the context ended first
	ErrorTypeCanceled ErrorType = "canceled"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// wrapError classifies an error returned by a core service
func wrapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var errType ErrorType
	switch {
	case coreerrors.IsValidation(err):
		errType = ErrorTypeValidation
	case coreerrors.IsParse(err), html.IsRepairError(err):
		errType = ErrorTypeParsing
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		errType = ErrorTypeCanceled
	default:
		errType = ErrorTypeInternal
	}
	return NewError(errType, op+" failed").WithCause(err).WithContext("op", op)
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errType
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return isType(err, ErrorTypeParsing)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
