package openweather

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidAPIKey is matched by API errors with status 401
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrNoDataFound is matched by API errors with status 404
	ErrNoDataFound = errors.New("no data found")
)

// APIError represents an error returned by the OpenWeatherMap API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match the status specific sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidAPIKey:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNoDataFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ValidationError represents a validation error for input parameters
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NetworkError represents a network-related error
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
