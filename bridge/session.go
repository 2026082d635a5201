package bridge

import (
	"sync"
	"time"
)

// State represents bridge connection state
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// session holds the remote session id, connection state and last activity.
type session struct {
	mux          sync.RWMutex
	id           string
	state        State
	lastActivity time.Time
	closed       bool
}

func (s *session) ID() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.id
}

func (s *session) State() State {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

// setState changes state unless the session was closed
func (s *session) setState(state State) {
	s.mux.Lock()
	if !s.closed {
		s.state = state
	}
	s.mux.Unlock()
}

// adopt sets id only when no session is active and the session is open, returns true if adopted
func (s *session) adopt(id string) bool {
	if id == "" {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.id != "" || s.closed {
		return false
	}
	s.id = id
	return true
}

// invalidate clears session id and moves to state, returns the cleared id
func (s *session) invalidate(state State) string {
	s.mux.Lock()
	defer s.mux.Unlock()
	prev := s.id
	s.id = ""
	if !s.closed {
		s.state = state
	}
	return prev
}

// close clears session id for good, returns the cleared id
func (s *session) close() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	prev := s.id
	s.id = ""
	s.state = StateDisconnected
	s.closed = true
	return prev
}

func (s *session) Closed() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.closed
}

func (s *session) touch(at time.Time) {
	s.mux.Lock()
	if at.After(s.lastActivity) {
		s.lastActivity = at
	}
	s.mux.Unlock()
}

func (s *session) LastActivity() time.Time {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.lastActivity
}
