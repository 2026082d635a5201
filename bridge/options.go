package bridge

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cm64io/mcp/client"
	"github.com/cm64io/mcp/client/auth"
)

const (
	DefaultEndpoint = "https://build.cm64.io/api/mcp"
	DefaultTimeout  = 60 * time.Second
)

// Options represents bridge command line options
type Options struct {
	Token     string        `short:"t" long:"token" env:"CM64_TOKEN" description:"CM64 personal access token (required)"`
	Endpoint  string        `short:"e" long:"endpoint" env:"CM64_ENDPOINT" description:"MCP endpoint (default: https://build.cm64.io/api/mcp)"`
	ConfigURL string        `short:"c" long:"config" env:"CM64_CONFIG" description:"TOML config file path or URL"`
	Keepalive time.Duration `long:"keepalive" description:"keepalive tick interval (default: 5m)"`
	Idle      time.Duration `long:"idle" description:"idle time before a keepalive ping is sent (default: 4m)"`
	Timeout   time.Duration `long:"timeout" description:"remote request timeout (default: 60s)"`
	LogLevel  string        `short:"l" long:"log-level" description:"log level: trace, debug, info, warn, error, disabled"`
}

// Init fills options not set by flags or environment from the config file, then applies defaults.
func (o *Options) Init(ctx context.Context) error {
	if o.ConfigURL != "" {
		cfg, err := loadConfig(ctx, o.ConfigURL)
		if err != nil {
			return err
		}
		if err = cfg.apply(o); err != nil {
			return err
		}
	}
	o.Token = strings.TrimSpace(o.Token)
	o.Endpoint = strings.TrimSpace(o.Endpoint)
	if o.Endpoint == "" {
		o.Endpoint = DefaultEndpoint
	}
	if o.Keepalive == 0 {
		o.Keepalive = DefaultKeepaliveInterval
	}
	if o.Idle == 0 {
		o.Idle = DefaultIdleThreshold
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	return nil
}

// Validate checks required options
func (o *Options) Validate() error {
	if o.Token == "" {
		return fmt.Errorf("--token required or set CM64_TOKEN environment variable")
	}
	if o.Endpoint == "" {
		return fmt.Errorf("--endpoint required or set CM64_ENDPOINT environment variable")
	}
	endpoint, err := url.Parse(o.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", o.Endpoint, err)
	}
	if (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("invalid endpoint %q: expected absolute http(s) URL", o.Endpoint)
	}
	if o.Keepalive < 0 || o.Idle < 0 || o.Timeout < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// Client creates remote client for the options
func (o *Options) Client() *client.Client {
	return client.New(o.Endpoint,
		client.WithTokenSource(auth.NewTokenSource(o.Token)),
		client.WithTimeout(o.Timeout))
}
