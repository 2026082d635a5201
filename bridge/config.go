package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
)

// fileConfig represents TOML config file
type fileConfig struct {
	Endpoint  string `toml:"endpoint"`
	Token     string `toml:"token"`
	Keepalive string `toml:"keepalive"`
	Idle      string `toml:"idle"`
	Timeout   string `toml:"timeout"`
	LogLevel  string `toml:"log_level"`

	meta toml.MetaData
}

func loadConfig(ctx context.Context, URL string) (*fileConfig, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("load config %v: %w", URL, err)
	}
	cfg := &fileConfig{}
	if cfg.meta, err = toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %v: %w", URL, err)
	}
	return cfg, nil
}

// apply sets options that are still unset
func (c *fileConfig) apply(options *Options) error {
	if options.Endpoint == "" && c.meta.IsDefined("endpoint") {
		options.Endpoint = strings.TrimSpace(c.Endpoint)
	}
	if options.Token == "" && c.meta.IsDefined("token") {
		options.Token = strings.TrimSpace(c.Token)
	}
	if options.LogLevel == "" && c.meta.IsDefined("log_level") {
		options.LogLevel = strings.TrimSpace(c.LogLevel)
	}
	durations := []struct {
		key    string
		raw    string
		target *time.Duration
	}{
		{key: "keepalive", raw: c.Keepalive, target: &options.Keepalive},
		{key: "idle", raw: c.Idle, target: &options.Idle},
		{key: "timeout", raw: c.Timeout, target: &options.Timeout},
	}
	for _, item := range durations {
		if *item.target != 0 || !c.meta.IsDefined(item.key) {
			continue
		}
		value, err := time.ParseDuration(strings.TrimSpace(item.raw))
		if err != nil {
			return fmt.Errorf("parse %v: %w", item.key, err)
		}
		*item.target = value
	}
	return nil
}
