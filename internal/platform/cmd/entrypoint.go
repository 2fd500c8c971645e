// Package cmd holds the startup plumbing shared by tablekit binaries:
// environment-then-flags configuration and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/config"
	"github.com/louisbranch/tablekit/internal/platform/otel"
)

// ServiceWeb names the web service in telemetry resources and log prefixes.
const ServiceWeb = "web"

const defaultTelemetryFlush = 5 * time.Second

// LoadConfig fills cfg from env tags, then lets bind register flags whose
// defaults are those env values, then parses args. Flags win over env.
func LoadConfig[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the bracketed log prefix for a service, e.g. "[WEB] ".
func LogPrefix(service string) string {
	service = strings.TrimSpace(service)
	if service == "" {
		return ""
	}
	return "[" + strings.ToUpper(service) + "] "
}

// Service describes one binary's run loop.
type Service struct {
	Name string
	// Logger receives telemetry shutdown failures. Defaults to log.Default().
	Logger *log.Logger
	// FlushTimeout bounds the telemetry flush on exit.
	FlushTimeout time.Duration
}

// Run installs telemetry for the service, calls run, and flushes telemetry
// once run returns.
func (s Service) Run(ctx context.Context, run func(context.Context) error) error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	flush := s.FlushTimeout
	if flush <= 0 {
		flush = defaultTelemetryFlush
	}

	shutdown, err := otel.Setup(ctx, name)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flush)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Printf("telemetry shutdown service=%s err=%v", name, err)
		}
	}()
	return run(ctx)
}
