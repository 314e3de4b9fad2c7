package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Terminal session errors
	ErrCodeTerminalInit     ErrorCode = "TERMINAL_INIT"
	ErrCodeTerminalTooSmall ErrorCode = "TERMINAL_TOO_SMALL"
	ErrCodeInputClosed      ErrorCode = "INPUT_CLOSED"

	// File errors
	ErrCodeFileRead ErrorCode = "FILE_READ"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PartError represents a structured error with context
type PartError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PartError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PartError) WithDetail(key string, value interface{}) *PartError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PartError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PartError
func New(code ErrorCode, message string) *PartError {
	return &PartError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PartError
func Wrap(err error, code ErrorCode, message string) *PartError {
	return &PartError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific PartError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	partErr, ok := err.(*PartError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return partErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	partErr, ok := err.(*PartError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return partErr.Code
}
