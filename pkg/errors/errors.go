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

	// Compilation errors. IO and PARSE abort the whole pass.
	ErrIO       ErrorCode = "IO"
	ErrParse    ErrorCode = "PARSE"
	ErrDeferred ErrorCode = "DEFERRED"
)

// SpliceError represents a structured error with code and details
type SpliceError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpliceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpliceError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SpliceError) Is(target error) bool {
	var targetErr *SpliceError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpliceError with the given code and message
func New(code ErrorCode, message string) *SpliceError {
	return &SpliceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpliceError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpliceError {
	return &SpliceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SpliceError
func Wrap(err error, code ErrorCode, message string) *SpliceError {
	if err == nil {
		return nil
	}
	return &SpliceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpliceError {
	if err == nil {
		return nil
	}
	return &SpliceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SpliceError) WithDetail(key string, value interface{}) *SpliceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SpliceError) WithDetails(details map[string]interface{}) *SpliceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var spliceErr *SpliceError
	if errors.As(err, &spliceErr) {
		return spliceErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpliceError
func GetErrorCode(err error) ErrorCode {
	var spliceErr *SpliceError
	if errors.As(err, &spliceErr) {
		return spliceErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SpliceError
func GetErrorDetails(err error) map[string]interface{} {
	var spliceErr *SpliceError
	if errors.As(err, &spliceErr) {
		return spliceErr.Details
	}
	return nil
}
