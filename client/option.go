package client

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Option represents option
type Option func(c *Client)

// WithHTTPClient sets base http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTokenSource sets bearer credential source
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

// WithTimeout sets per exchange timeout, zero or less disables it
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMaxBodySize limits response body size
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}
