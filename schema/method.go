package schema

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

const (
	// HeaderSessionID carries the remote session id on requests and responses.
	HeaderSessionID = "mcp-session-id"

	// ProtocolVersion is used for synthesized handshakes when the local client's own is unknown.
	ProtocolVersion = "2024-11-05"

	ClientName    = "cm64-cli"
	ClientVersion = "1.0.0"

	ReconnectIDPrefix = "reconnect-"
	PingIDPrefix      = "ping-"
)

// NewInitializeParams returns default handshake parameters
func NewInitializeParams() *mcpschema.InitializeRequestParams {
	return &mcpschema.InitializeRequestParams{
		Capabilities:    mcpschema.ClientCapabilities{},
		ClientInfo:      mcpschema.Implementation{Name: ClientName, Version: ClientVersion},
		ProtocolVersion: ProtocolVersion,
	}
}
