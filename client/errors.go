package client

import (
	"errors"
	"fmt"
)

// ErrBodyTooLarge reports a response body over the configured limit
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// TransportError represents a network level failure reaching the endpoint
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError represents non-2xx status or malformed response body
type ProtocolError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil && e.Body == "" {
		return fmt.Sprintf("HTTP %d: malformed response: %v", e.StatusCode, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: malformed response: %v: %s", e.StatusCode, e.Err, e.Body)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsTransportError returns true if err is or wraps *TransportError
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// StatusCode returns HTTP status carried by err or zero
func StatusCode(err error) int {
	var target *ProtocolError
	if errors.As(err, &target) {
		return target.StatusCode
	}
	return 0
}
