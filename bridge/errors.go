package bridge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned for messages received after the bridge was closed
var ErrClosed = errors.New("bridge closed")

// sessionLossMarkers are server messages indicating that the session id is unknown or missing.
// Matching is a substring heuristic on the error text, not a structured signal.
var sessionLossMarkers = []string{
	"Server not initialized",
	"Session not found",
	"Bad Request",
}

// SessionLostError wraps a failed exchange reporting session loss
type SessionLostError struct {
	SessionID string
	Err       error
}

func (e *SessionLostError) Error() string {
	return fmt.Sprintf("session lost: %v", e.Err)
}

func (e *SessionLostError) Unwrap() error {
	return e.Err
}

// ReconnectError represents failed reconnect handshake
type ReconnectError struct {
	Err error
}

func (e *ReconnectError) Error() string {
	return fmt.Sprintf("reconnect failed: %v", e.Err)
}

func (e *ReconnectError) Unwrap() error {
	return e.Err
}

// IsSessionLost returns true if err text carries one of session loss markers
func IsSessionLost(err error) bool {
	if err == nil {
		return false
	}
	var lost *SessionLostError
	if errors.As(err, &lost) {
		return true
	}
	message := err.Error()
	for _, marker := range sessionLossMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// classify wraps err as *SessionLostError when it signals session loss
func classify(err error, sessionID string) error {
	if err == nil || !IsSessionLost(err) {
		return err
	}
	var lost *SessionLostError
	if errors.As(err, &lost) {
		return err
	}
	return &SessionLostError{SessionID: sessionID, Err: err}
}
