package bridge

import (
	"time"

	"github.com/rs/zerolog"
)

// Option represents service option
type Option func(s *Service)

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger.With().Str("component", "bridge").Logger()
	}
}

// WithClock sets time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKeepalive sets keepalive tick interval and idle threshold; interval <= 0 disables keepalive
func WithKeepalive(interval, idle time.Duration) Option {
	return func(s *Service) {
		s.keepaliveInterval = interval
		if idle >= 0 {
			s.idleThreshold = idle
		}
	}
}
