package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializeParams(t *testing.T) {
	data, err := json.Marshal(NewInitializeParams())
	require.NoError(t, err)
	params := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &params))
	assert.Equal(t, ProtocolVersion, params["protocolVersion"])
	clientInfo, ok := params["clientInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ClientName, clientInfo["name"])
	assert.Equal(t, ClientVersion, clientInfo["version"])
}

func TestNewBridgeError(t *testing.T) {
	err := NewBridgeError(errors.New("connection failed: HTTP 502: bad gateway"))
	assert.EqualValues(t, BridgeError, err.Code)
	assert.Equal(t, "connection failed: HTTP 502: bad gateway", err.Message)
}
