package response

import (
	"errors"
	"fmt"
)

// ErrCannotParse is matched by every error returned from an assembler
var ErrCannotParse = errors.New("response could not be parsed")

// ErrMissingKey reports a required key absent from the response
var ErrMissingKey = errors.New("required key is missing")

// ParseError is returned when a response body cannot be mapped
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s response: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrCannotParse, e.Err}
}

func parseError(endpoint string, err error) error {
	return &ParseError{Endpoint: endpoint, Err: err}
}

func missing(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingKey, key)
}

// at prefixes err with the path of the node it was raised in
func at(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
