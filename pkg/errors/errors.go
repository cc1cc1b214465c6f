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
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input decoding errors
	ErrDecodeInput       ErrorCode = "DECODE_INPUT"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrInputRead         ErrorCode = "INPUT_READ"

	// Output errors
	ErrSinkWrite ErrorCode = "SINK_WRITE"
)

// QuillError represents a structured error with code and details
type QuillError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *QuillError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QuillError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *QuillError) Is(target error) bool {
	var targetErr *QuillError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new QuillError with the given code and message
func New(code ErrorCode, message string) *QuillError {
	return &QuillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new QuillError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *QuillError {
	return &QuillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a QuillError
func Wrap(err error, code ErrorCode, message string) *QuillError {
	if err == nil {
		return nil
	}
	return &QuillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *QuillError {
	if err == nil {
		return nil
	}
	return &QuillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *QuillError) WithDetail(key string, value interface{}) *QuillError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var quillErr *QuillError
	if errors.As(err, &quillErr) {
		return quillErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a QuillError
func GetErrorCode(err error) ErrorCode {
	var quillErr *QuillError
	if errors.As(err, &quillErr) {
		return quillErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a QuillError
func GetErrorDetails(err error) map[string]interface{} {
	var quillErr *QuillError
	if errors.As(err, &quillErr) {
		return quillErr.Details
	}
	return nil
}
