package bridge

import (
	"context"

	"github.com/cm64io/mcp/schema"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/server/stdio"
)

// Handler adapts the local channel to the bridge service
type Handler struct {
	service *Service
}

// Serve handles a local request; bridge failures become JSON-RPC errors addressed to the request id.
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	response.Id = request.Id
	response.Jsonrpc = jsonrpc.Version
	result, err := h.service.HandleInbound(ctx, request)
	if err != nil {
		h.service.logger.Error().Str("method", request.Method).Err(err).Msg("error handling message")
		response.Error = schema.NewBridgeError(err)
		return
	}
	response.Result = result.Result
	response.Error = result.Error
}

// OnNotification forwards local notifications, failures are only logged
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	if err := h.service.Notify(ctx, notification); err != nil {
		h.service.logger.Warn().Str("method", notification.Method).Err(err).Msg("notification not delivered")
	}
}

// NewHandler creates local channel handler
func (s *Service) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return &Handler{service: s}
}

// Stdio returns a JSON-RPC server bridging standard input/output to the remote endpoint
func (s *Service) Stdio(ctx context.Context) *stdio.Server {
	return stdio.New(ctx, s.NewHandler)
}
