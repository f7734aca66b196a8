package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Document and binding errors
	ErrRootNotFound    ErrorCode = "ROOT_NOT_FOUND"
	ErrInvalidSelector ErrorCode = "INVALID_SELECTOR"
	ErrDocumentParse   ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentWrite   ErrorCode = "DOCUMENT_WRITE"

	// Value source errors
	ErrValuesLoad ErrorCode = "VALUES_LOAD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// MarkbindError represents a structured error with code and details
type MarkbindError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarkbindError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarkbindError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkbindError carrying the same code.
func (e *MarkbindError) Is(target error) bool {
	var targetErr *MarkbindError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarkbindError with the given code and message
func New(code ErrorCode, message string) *MarkbindError {
	return &MarkbindError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarkbindError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarkbindError {
	return &MarkbindError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *MarkbindError {
	if err == nil {
		return nil
	}
	return &MarkbindError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarkbindError {
	if err == nil {
		return nil
	}
	return &MarkbindError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarkbindError) WithDetail(key string, value interface{}) *MarkbindError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mbErr *MarkbindError
	if errors.As(err, &mbErr) {
		return mbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MarkbindError
func GetErrorCode(err error) ErrorCode {
	var mbErr *MarkbindError
	if errors.As(err, &mbErr) {
		return mbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MarkbindError
func GetErrorDetails(err error) map[string]interface{} {
	var mbErr *MarkbindError
	if errors.As(err, &mbErr) {
		return mbErr.Details
	}
	return nil
}
