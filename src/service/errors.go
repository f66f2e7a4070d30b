package service

import (
	"fmt"
	"net/http"
)

// RequestError means the forecast request never produced a response
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to fetch forecast data: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer from the weather API
type APIError struct {
	StatusCode int
	// Reason is Open-Meteo's "reason" field, empty if the body had none
	Reason string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("weather API error (%d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("weather API error (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError means the response body could not be turned into a forecast
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse forecast data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
