// Package client implements the remote side of the bridge: a stateless HTTP client that
// performs one JSON-RPC exchange per call against a remote MCP endpoint.
//
// Each call:
//   - posts the envelope as a JSON body with a bearer credential (via an oauth2 transport),
//   - attaches the mcp-session-id header when the caller supplies one,
//   - reports the mcp-session-id response header back in the Exchange.
//
// Non-2xx statuses surface as *ProtocolError carrying the status code and the raw body;
// network failures surface as *TransportError. Session bookkeeping is left to the caller.
//
// Example:
//
//	cli := client.New("https://build.cm64.io/api/mcp", client.WithTokenSource(auth.NewTokenSource(token)))
//	exchange, err := cli.Send(ctx, request, sessionID)
//	if err != nil {
//		return err
//	}
//	response, err := exchange.Response()
package client
