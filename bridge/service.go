package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cm64io/mcp/client"
	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"golang.org/x/sync/singleflight"
)

// Service is the bridge core: it owns the remote session, dispatches every local message,
// recovers lost sessions and keeps the session alive while idle.
type Service struct {
	client  *client.Client
	session session
	logger  zerolog.Logger
	now     func() time.Time

	keepaliveInterval time.Duration
	idleThreshold     time.Duration

	reconnectGroup singleflight.Group
	reconnecting   atomic.Bool

	mux             sync.Mutex
	initParams      []byte
	keepaliveCancel context.CancelFunc
	keepaliveDone   chan struct{}
	closed          bool
}

// outboundNotification is a notification envelope as sent to the remote endpoint
type outboundNotification struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// State returns current connection state
func (s *Service) State() State {
	return s.session.State()
}

// SessionID returns active remote session id or empty string
func (s *Service) SessionID() string {
	return s.session.ID()
}

// LastActivity returns time of the last successful exchange
func (s *Service) LastActivity() time.Time {
	return s.session.LastActivity()
}

// Reconnecting returns true while reconnect handshake is in flight
func (s *Service) Reconnecting() bool {
	return s.reconnecting.Load()
}

// HandleInbound dispatches a local request and returns the remote response addressed to the request id.
func (s *Service) HandleInbound(ctx context.Context, request *jsonrpc.Request) (*jsonrpc.Response, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	if request.Jsonrpc == "" {
		normalized := *request
		normalized.Jsonrpc = jsonrpc.Version
		request = &normalized
	}
	var response *jsonrpc.Response
	var err error
	if request.Method == mcpschema.MethodInitialize && s.session.ID() == "" {
		response, err = s.connect(ctx, request)
	} else {
		response, err = s.forward(ctx, request)
	}
	if err != nil {
		return nil, err
	}
	response.Id = request.Id
	if response.Jsonrpc == "" {
		response.Jsonrpc = jsonrpc.Version
	}
	return response, nil
}

// forward sends request, on session loss it reconnects and retries exactly once
func (s *Service) forward(ctx context.Context, request *jsonrpc.Request) (*jsonrpc.Response, error) {
	response, err := s.request(ctx, request)
	var lost *SessionLostError
	if !errors.As(err, &lost) {
		return response, err
	}
	s.logger.Warn().Str("method", request.Method).Err(err).Msg("session lost, reconnecting")
	if err = s.reconnect(ctx, lost.SessionID); err != nil {
		return nil, err
	}
	return s.request(ctx, request)
}

func (s *Service) connect(ctx context.Context, request *jsonrpc.Request) (*jsonrpc.Response, error) {
	s.session.setState(StateConnecting)
	s.logger.Info().Str("endpoint", s.client.Endpoint()).Msg("connecting")
	response, err := s.request(ctx, request)
	if err == nil && response.Error != nil {
		err = fmt.Errorf("initialize failed: %s", response.Error.Message)
	}
	if err != nil {
		s.session.invalidate(StateDisconnected)
		return nil, fmt.Errorf("connection failed: %w", err)
	}
	s.mux.Lock()
	s.initParams = append([]byte(nil), request.Params...)
	s.mux.Unlock()
	s.session.setState(StateConnected)
	s.logger.Info().Str("session", s.session.ID()).Msg("connected")
	s.startKeepalive()
	return response, nil
}

// request performs one exchange and decodes JSON-RPC response
func (s *Service) request(ctx context.Context, payload interface{}) (*jsonrpc.Response, error) {
	exchange, err := s.exchange(ctx, payload)
	if err != nil {
		return nil, err
	}
	return exchange.Response()
}

// exchange performs one exchange carrying the active session id, adopting the session id
// returned for an exchange sent without one.
func (s *Service) exchange(ctx context.Context, payload interface{}) (*client.Exchange, error) {
	if s.session.Closed() {
		return nil, ErrClosed
	}
	sessionID := s.session.ID()
	exchange, err := s.client.Send(ctx, payload, sessionID)
	if exchange != nil && sessionID == "" && exchange.SessionID != "" {
		if s.session.adopt(exchange.SessionID) {
			s.logger.Debug().Str("session", exchange.SessionID).Msg("session adopted")
		} else if s.session.Closed() {
			s.discard(ctx, exchange.SessionID)
			return nil, ErrClosed
		}
	}
	if err != nil {
		return nil, classify(err, sessionID)
	}
	s.session.touch(s.now())
	return exchange, nil
}

// Notify forwards a local notification to the remote endpoint
func (s *Service) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	if s.isClosed() {
		return ErrClosed
	}
	payload := &outboundNotification{Jsonrpc: jsonrpc.Version, Method: notification.Method, Params: json.RawMessage(notification.Params)}
	exchange, err := s.exchange(ctx, payload)
	if err != nil {
		return err
	}
	if !exchange.Empty() {
		s.logger.Trace().Str("method", notification.Method).Bytes("body", exchange.Body).Msg("notification body ignored")
	}
	return nil
}

// Close stops keepalive and tears down the remote session (best effort)
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	if s.closed {
		s.mux.Unlock()
		return nil
	}
	s.closed = true
	s.mux.Unlock()

	s.stopKeepalive()
	sessionID := s.session.close()
	if sessionID == "" {
		return nil
	}
	if err := s.client.Delete(ctx, sessionID); err != nil {
		s.logger.Warn().Str("session", sessionID).Err(err).Msg("disconnect error")
		return nil
	}
	s.logger.Info().Str("session", sessionID).Msg("disconnected")
	return nil
}

// discard tears down a session issued to a handshake that completed after Close
func (s *Service) discard(ctx context.Context, sessionID string) {
	if err := s.client.Delete(context.WithoutCancel(ctx), sessionID); err != nil {
		s.logger.Warn().Str("session", sessionID).Err(err).Msg("discard session error")
		return
	}
	s.logger.Info().Str("session", sessionID).Msg("session issued after close discarded")
}

func (s *Service) isClosed() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.closed
}

// New creates a bridge service on top of the remote client
func New(remote *client.Client, options ...Option) *Service {
	ret := &Service{
		client:            remote,
		logger:            zerolog.Nop(),
		now:               time.Now,
		keepaliveInterval: DefaultKeepaliveInterval,
		idleThreshold:     DefaultIdleThreshold,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.session.touch(ret.now())
	return ret
}
