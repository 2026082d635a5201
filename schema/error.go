package schema

import "github.com/viant/jsonrpc"

const (
	// BridgeError is the JSON-RPC server error code used for failures raised by the bridge itself.
	BridgeError = -32000
)

// NewBridgeError creates a bridge error from err
func NewBridgeError(err error) *jsonrpc.Error {
	return jsonrpc.NewError(BridgeError, err.Error(), nil)
}
