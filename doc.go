// Package mcp is the root of the CM64 MCP bridge module.
//
// The bridge lets a local MCP client (an editor or agent host launching a stdio server)
// talk to the CM64 MCP endpoint over HTTP:
//   - bridge contains the session owning bridge service, the stdio adapter and the cm64 command
//   - client performs single authenticated HTTP exchanges with the endpoint
//   - schema holds protocol constants shared by both
//
// Example:
//
//	CM64_TOKEN=<personal-access-token> cm64
package mcp
