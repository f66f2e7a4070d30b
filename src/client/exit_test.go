package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/apimgr/weather-chart/src/service"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		expected int
		actual   int
	}{
		{"ExitSuccess", 0, ExitSuccess},
		{"ExitGeneralError", 1, ExitGeneralError},
		{"ExitConnError", 3, ExitConnError},
		{"ExitUsageError", 64, ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.expected, tt.actual)
			}
		})
	}
}

func TestNewExitError(t *testing.T) {
	err := NewExitError("custom error", 99)

	if err.Message != "custom error" {
		t.Errorf("Expected message 'custom error', got '%s'", err.Message)
	}
	if err.Code != 99 {
		t.Errorf("Expected code 99, got %d", err.Code)
	}
	if err.Error() != "custom error" {
		t.Errorf("Expected error string 'custom error', got '%s'", err.Error())
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		code int
	}{
		{"connection", NewConnectionError("connection refused"), ExitConnError},
		{"usage", NewUsageError("bad flag"), ExitUsageError},
		{"api", NewAPIError("server error"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Expected exit code %d, got %d", tt.code, tt.err.Code)
			}
		})
	}
}

func TestFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"request", &service.RequestError{URL: "http://x", Err: errors.New("connection refused")}, ExitConnError},
		{"api", &service.APIError{StatusCode: 400, Reason: "bad latitude"}, ExitGeneralError},
		{"decode", &service.DecodeError{Err: errors.New("unexpected EOF")}, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitErr := fetchError(tt.err)
			if exitErr.Code != tt.code {
				t.Errorf("Expected exit code %d, got %d", tt.code, exitErr.Code)
			}
			if !errors.Is(exitErr, tt.err) {
				t.Error("Expected exit error to wrap the service error")
			}
			if exitErr.Error() != tt.err.Error() {
				t.Errorf("Expected message %q, got %q", tt.err.Error(), exitErr.Error())
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("Expected %d for nil, got %d", ExitSuccess, got)
	}
	if got := ExitCode(fmt.Errorf("wrapped: %w", NewUsageError("bad"))); got != ExitUsageError {
		t.Errorf("Expected %d for wrapped usage error, got %d", ExitUsageError, got)
	}
	if got := ExitCode(errors.New("plain")); got != ExitGeneralError {
		t.Errorf("Expected %d for plain error, got %d", ExitGeneralError, got)
	}
}
