package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Folder errors
	ErrCodeDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrCodeNotADirectory     ErrorCode = "NOT_A_DIRECTORY"

	// Network errors
	ErrCodePortUnavailable ErrorCode = "PORT_UNAVAILABLE"
	ErrCodePortOutOfRange  ErrorCode = "PORT_OUT_OF_RANGE"

	// Server lifecycle errors
	ErrCodeSpawnFailed          ErrorCode = "SPAWN_FAILED"
	ErrCodeServerNotRunning     ErrorCode = "SERVER_NOT_RUNNING"
	ErrCodeServerAlreadyRunning ErrorCode = "SERVER_ALREADY_RUNNING"

	// Filesystem errors
	ErrCodeFilesystem ErrorCode = "FILESYSTEM_ERROR"

	// Persistence errors (logged, never surfaced to the user)
	ErrCodePersistence ErrorCode = "PERSISTENCE_ERROR"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ServrError represents a structured error with context
type ServrError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ServrError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ServrError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ServrError) WithDetail(key string, value interface{}) *ServrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ServrError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ServrError
func New(code ErrorCode, message string) *ServrError {
	return &ServrError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ServrError
func Wrap(err error, code ErrorCode, message string) *ServrError {
	return &ServrError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific ServrError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	servrErr, ok := err.(*ServrError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return servrErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	servrErr, ok := err.(*ServrError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return servrErr.Code
}
