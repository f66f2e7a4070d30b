package client

import (
	"errors"

	"github.com/apimgr/weather-chart/src/service"
)

// Exit codes
const (
	// Success
	ExitSuccess = 0
	// General error, including API and decode failures
	ExitGeneralError = 1
	// Connection error
	ExitConnError = 3
	// Usage error
	ExitUsageError = 64
)

// ExitError represents an error with a specific exit code
type ExitError struct {
	Message string
	Code    int
	Err     error
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError
func NewExitError(message string, code int) *ExitError {
	return &ExitError{Message: message, Code: code}
}

// NewConnectionError creates a connection error (exit code 3)
func NewConnectionError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitConnError}
}

// NewUsageError creates a usage error (exit code 64)
func NewUsageError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitUsageError}
}

// NewAPIError creates a general API error (exit code 1)
func NewAPIError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitGeneralError}
}

// fetchError maps a forecast service error to an exit error
func fetchError(err error) *ExitError {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		exitErr := NewConnectionError(err.Error())
		exitErr.Err = err
		return exitErr
	}

	exitErr := NewAPIError(err.Error())
	exitErr.Err = err
	return exitErr
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneralError
}
