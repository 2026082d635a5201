package bridge

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cm64io/mcp/client/auth"
	"github.com/cm64io/mcp/internal/logging"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

const closeTimeout = 10 * time.Second

const usage = `[OPTIONS]

Bridges MCP JSON-RPC over standard input/output to the CM64 HTTP endpoint.

Examples:
  cm64 --token <personal-access-token>
  CM64_TOKEN=<token> CM64_ENDPOINT=http://localhost:3000/api/mcp cm64
  cm64 --config ~/.cm64/config.toml --log-level debug`

// Run parses arguments and runs the bridge until standard input closes or a termination signal arrives.
func Run(args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "cm64"
	parser.Usage = usage
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := options.Init(ctx); err != nil {
		return err
	}
	if err := options.Validate(); err != nil {
		return err
	}

	logger := logging.New(options.LogLevel)
	if auth.Expired(options.Token, time.Now()) {
		logger.Warn().Msg("token appears to be expired, the endpoint may reject it")
	}
	logger.Info().Msgf("Connecting to %s...", options.Endpoint)
	service := New(options.Client(),
		WithLogger(logger),
		WithKeepalive(options.Keepalive, options.Idle))

	done := make(chan error, 1)
	go func() {
		done <- service.Stdio(ctx).ListenAndServe()
	}()
	logger.Info().Msg("Bridge started, waiting for initialize...")

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info().Msg("signal received, shutting down")
	}
	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	_ = service.Close(closeCtx)
	reportChannelClosed(logger, err)
	logger.Info().Msg("bridge stopped")
	return nil
}

// reportChannelClosed tells a clean end of input apart from a failed read of standard input
func reportChannelClosed(logger zerolog.Logger, err error) {
	if err == nil || errors.Is(err, io.EOF) {
		logger.Info().Msg("local channel closed")
		return
	}
	logger.Warn().Err(err).Msg("standard input read failed, local channel abandoned")
}

// IsHelp returns true if err was caused by a help request; its message is the help text
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
