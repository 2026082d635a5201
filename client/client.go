package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cm64io/mcp/schema"
	"github.com/viant/jsonrpc"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout      = 60 * time.Second
	maxResponseBodySize = 8 << 20
)

// Client performs single HTTP exchanges with a remote MCP endpoint.
// It holds no session state; callers pass the session id on every call.
type Client struct {
	endpoint    string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	timeout     time.Duration
	maxBodySize int64
}

// Exchange represents a completed HTTP exchange
type Exchange struct {
	StatusCode  int
	ContentType string
	SessionID   string
	Body        []byte
}

// Empty returns true if the exchange carried no payload (i.e. accepted notification)
func (e *Exchange) Empty() bool {
	return len(bytes.TrimSpace(e.Body)) == 0
}

// Response decodes exchange body as a JSON-RPC response
func (e *Exchange) Response() (*jsonrpc.Response, error) {
	payload, err := extractPayload(e.ContentType, e.Body)
	if err != nil {
		return nil, &ProtocolError{StatusCode: e.StatusCode, Body: string(e.Body), Err: err}
	}
	response := &jsonrpc.Response{}
	if err = json.Unmarshal(payload, response); err != nil {
		return nil, &ProtocolError{StatusCode: e.StatusCode, Body: string(e.Body), Err: err}
	}
	return response, nil
}

// Endpoint returns remote endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts payload as JSON to the endpoint. For non-2xx statuses both the exchange and a *ProtocolError are returned,
// so that the caller can still inspect the response headers.
func (c *Client) Send(ctx context.Context, payload interface{}, sessionID string) (*Exchange, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sessionID != "" {
		req.Header.Set(schema.HeaderSessionID, sessionID)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: c.endpoint, Err: err}
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, &ProtocolError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, c.maxBodySize)}
	}
	exchange := &Exchange{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		SessionID:   strings.TrimSpace(resp.Header.Get(schema.HeaderSessionID)),
		Body:        body,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return exchange, &ProtocolError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return exchange, nil
}

// Delete requests remote session teardown
func (c *Client) Delete(ctx context.Context, sessionID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint, nil)
	if err != nil {
		return err
	}
	if sessionID != "" {
		req.Header.Set(schema.HeaderSessionID, sessionID)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: http.MethodDelete, URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProtocolError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// New creates a client for the supplied endpoint
func New(endpoint string, options ...Option) *Client {
	ret := &Client{
		endpoint:    endpoint,
		httpClient:  &http.Client{},
		timeout:     defaultTimeout,
		maxBodySize: maxResponseBodySize,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.tokenSource != nil {
		httpClient := *ret.httpClient
		httpClient.Transport = &oauth2.Transport{Source: ret.tokenSource, Base: ret.httpClient.Transport}
		ret.httpClient = &httpClient
	}
	return ret
}
