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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Document errors
	ErrDocumentLoad  ErrorCode = "DOCUMENT_LOAD"
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentEmpty ErrorCode = "DOCUMENT_EMPTY"

	// Output errors
	ErrOutputCreate ErrorCode = "OUTPUT_CREATE"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
)

// DocmdError represents a structured error with code and details
type DocmdError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocmdError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocmdError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocmdError) Is(target error) bool {
	var targetErr *DocmdError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocmdError with the given code and message
func New(code ErrorCode, message string) *DocmdError {
	return &DocmdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocmdError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocmdError {
	return &DocmdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocmdError
func Wrap(err error, code ErrorCode, message string) *DocmdError {
	if err == nil {
		return nil
	}
	return &DocmdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocmdError {
	if err == nil {
		return nil
	}
	return &DocmdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocmdError) WithDetail(key string, value interface{}) *DocmdError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var docmdErr *DocmdError
	if errors.As(err, &docmdErr) {
		return docmdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocmdError
func GetErrorCode(err error) ErrorCode {
	var docmdErr *DocmdError
	if errors.As(err, &docmdErr) {
		return docmdErr.Code
	}
	return ErrUnknown
}
