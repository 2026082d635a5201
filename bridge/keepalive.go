package bridge

import (
	"context"
	"time"

	"github.com/cm64io/mcp/schema"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

const (
	// DefaultKeepaliveInterval is the keepalive tick period
	DefaultKeepaliveInterval = 5 * time.Minute
	// DefaultIdleThreshold is the idle duration after which a tick sends a ping
	DefaultIdleThreshold = 4 * time.Minute
)

func (s *Service) startKeepalive() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed || s.keepaliveCancel != nil || s.keepaliveInterval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.keepaliveCancel = cancel
	s.keepaliveDone = done
	go s.keepalive(ctx, done)
}

func (s *Service) stopKeepalive() {
	s.mux.Lock()
	cancel, done := s.keepaliveCancel, s.keepaliveDone
	s.keepaliveCancel, s.keepaliveDone = nil, nil
	s.mux.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Service) keepalive(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.keepaliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ping(ctx)
		}
	}
}

// ping sends a keepalive ping if the session has been idle longer than the threshold.
// Failures are logged only; a dead session is recovered by the next real request.
func (s *Service) ping(ctx context.Context) bool {
	if s.session.ID() == "" || s.reconnecting.Load() {
		return false
	}
	idle := s.now().Sub(s.session.LastActivity())
	if idle <= s.idleThreshold {
		s.logger.Trace().Dur("idle", idle).Msg("keepalive skipped")
		return false
	}
	s.logger.Debug().Dur("idle", idle).Msg("sending keepalive ping")
	request := &jsonrpc.Request{
		Jsonrpc: jsonrpc.Version,
		Id:      schema.PingIDPrefix + uuid.NewString(),
		Method:  mcpschema.MethodPing,
	}
	if _, err := s.request(ctx, request); err != nil {
		s.logger.Warn().Err(err).Msg("keepalive failed, will reconnect on next request")
	}
	return true
}
