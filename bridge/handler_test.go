package bridge

import (
	"context"
	"net/http"
	"testing"

	"github.com/cm64io/mcp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
)

func TestHandler_Serve(t *testing.T) {
	remote := newFakeRemote(t, "abc")
	srv := New(remote.client(), WithKeepalive(0, 0))
	defer srv.Close(context.Background())
	handler := srv.NewHandler(context.Background(), nil)

	response := &jsonrpc.Response{}
	handler.Serve(context.Background(), newRequest("1", "initialize", initializeParams), response)
	require.Nil(t, response.Error)
	assert.EqualValues(t, "1", response.Id)
	assert.Equal(t, jsonrpc.Version, response.Jsonrpc)

	response = &jsonrpc.Response{}
	handler.Serve(context.Background(), newRequest("2", "resources/list", ""), response)
	require.Nil(t, response.Error)
	assert.EqualValues(t, "2", response.Id)
	assert.JSONEq(t, `{"method":"resources/list","session":"abc"}`, string(response.Result))
}

func TestHandler_Serve_Error(t *testing.T) {
	remote := newFakeRemote(t)
	remote.initStatus = http.StatusServiceUnavailable
	srv := New(remote.client(), WithKeepalive(0, 0))
	handler := srv.NewHandler(context.Background(), nil)

	response := &jsonrpc.Response{}
	handler.Serve(context.Background(), newRequest("42", "initialize", initializeParams), response)
	require.NotNil(t, response.Error)
	assert.EqualValues(t, "42", response.Id)
	assert.Equal(t, jsonrpc.Version, response.Jsonrpc)
	assert.EqualValues(t, schema.BridgeError, response.Error.Code)
	assert.Contains(t, response.Error.Message, "connection failed")
	assert.Nil(t, response.Result)
}

func TestHandler_OnNotification(t *testing.T) {
	remote := newFakeRemote(t, "abc")
	srv := connected(t, remote)
	handler := srv.NewHandler(context.Background(), nil)
	handler.OnNotification(context.Background(), &jsonrpc.Notification{Method: "notifications/cancelled", Params: []byte(`{"requestId":"2"}`)})

	calls := remote.methodCalls("notifications/cancelled")
	require.Len(t, calls, 1)
	assert.Equal(t, "abc", calls[0].SessionID)
	assert.JSONEq(t, `{"requestId":"2"}`, string(calls[0].Params))
}
