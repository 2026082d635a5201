package bridge

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cm64io/mcp/schema"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

const reconnectKey = "reconnect"

// reconnect replaces the session that staleSessionID identified. Concurrent callers share one handshake;
// callers arriving after the session was already replaced return without a handshake.
func (s *Service) reconnect(ctx context.Context, staleSessionID string) error {
	_, err, shared := s.reconnectGroup.Do(reconnectKey, func() (interface{}, error) {
		if current := s.session.ID(); current != "" && current != staleSessionID {
			return nil, nil
		}
		// the handshake outlives the triggering caller: other callers may be waiting on it
		return nil, s.handshake(context.WithoutCancel(ctx))
	})
	if shared {
		s.logger.Debug().Msg("joined in-flight reconnect")
	}
	return err
}

func (s *Service) handshake(ctx context.Context) error {
	s.reconnecting.Store(true)
	defer s.reconnecting.Store(false)

	previous := s.session.invalidate(StateReconnecting)
	s.logger.Info().Str("previous", previous).Msg("reconnecting")
	request, err := s.newHandshakeRequest()
	if err != nil {
		s.session.invalidate(StateFailed)
		return &ReconnectError{Err: err}
	}
	response, err := s.request(ctx, request)
	if err == nil && response.Error != nil {
		err = errors.New(response.Error.Message)
	}
	if err != nil {
		s.session.invalidate(StateFailed)
		s.logger.Error().Err(err).Msg("reconnect failed")
		return &ReconnectError{Err: err}
	}
	s.session.setState(StateConnected)
	s.logger.Info().Str("session", s.session.ID()).Msg("reconnected")

	initialized := &jsonrpc.Notification{Method: mcpschema.MethodNotificationInitialized}
	if err = s.Notify(ctx, initialized); err != nil {
		s.logger.Warn().Err(err).Msg("initialized notification failed")
	}
	s.startKeepalive()
	return nil
}

// newHandshakeRequest synthesizes initialize request, replaying local client parameters when known
func (s *Service) newHandshakeRequest() (*jsonrpc.Request, error) {
	s.mux.Lock()
	params := s.initParams
	s.mux.Unlock()
	if len(params) == 0 {
		var err error
		if params, err = json.Marshal(schema.NewInitializeParams()); err != nil {
			return nil, err
		}
	}
	return &jsonrpc.Request{
		Jsonrpc: jsonrpc.Version,
		Id:      schema.ReconnectIDPrefix + uuid.NewString(),
		Method:  mcpschema.MethodInitialize,
		Params:  params,
	}, nil
}
