// Package bridge connects a local MCP client speaking newline delimited JSON-RPC over
// standard input/output to a remote MCP endpoint reachable over HTTP.
//
// The bridge owns the remote session. The first initialize request establishes it; every
// later message carries the session id in the mcp-session-id header. When the endpoint
// reports that the session is gone, the bridge performs one fresh initialize handshake and
// retries the failed message once. Concurrent failures share a single handshake. While the
// session is idle a background keepalive pings the endpoint so it is not expired.
//
// Example:
//
//	remote := client.New("https://build.cm64.io/api/mcp",
//		client.WithTokenSource(auth.NewTokenSource(token)))
//	service := bridge.New(remote, bridge.WithLogger(logger))
//	defer service.Close(ctx)
//	err := service.Stdio(ctx).ListenAndServe()
package bridge
