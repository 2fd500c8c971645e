// Package web hosts the schedule, activity and chat surfaces.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/tablekit/internal/platform/assets/catalog"
	"github.com/louisbranch/tablekit/internal/platform/assets/imagecdn"
	"github.com/louisbranch/tablekit/internal/platform/timeouts"
	"github.com/louisbranch/tablekit/internal/schedule"
	webapp "github.com/louisbranch/tablekit/internal/services/web/app"
	"github.com/louisbranch/tablekit/internal/services/web/chatroom"
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/modules"
	"github.com/louisbranch/tablekit/internal/services/web/platform/httpx"
	"github.com/louisbranch/tablekit/internal/services/web/platform/observability"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/tablekit/internal/services/web/routepath"
	webstatic "github.com/louisbranch/tablekit/internal/services/web/static"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	// TrustForwardedProto honors X-Forwarded-Proto behind a TLS proxy.
	TrustForwardedProto bool
	Sessions            storage.SessionStore
	Chat                *chatroom.Rooms
	Clock               schedule.Clock
	Location            *time.Location
	Covers              catalog.Manifest
	Logger              *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

func (cfg Config) dependencies() module.Dependencies {
	clock := cfg.Clock
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return module.Dependencies{
		Sessions: cfg.Sessions,
		Chat:     cfg.Chat,
		Clock:    clock,
		Location: location,
		CDN:      imagecdn.New(cfg.AssetBaseURL),
		Covers:   cfg.Covers,
		Logger:   cfg.Logger,
	}
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := cfg.dependencies()
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	h, err := webapp.Compose(webapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(policy),
		SchemePolicy: policy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	chained := httpx.Chain(rootMux,
		httpx.RecoverPanic(deps.Log()),
		httpx.RequestID(),
		observability.RequestLogger(deps.Log()),
	)
	return otelhttp.NewHandler(chained, "tablekit.web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + spanRoute(r.URL.Path)
		}),
	), nil
}

// spanRoute collapses per-session paths so span names stay low-cardinality.
func spanRoute(path string) string {
	for _, prefix := range []string{routepath.ActivitySchedulePrefix, routepath.SchedulePrefix, routepath.ChatPrefix, routepath.Static} {
		if strings.HasPrefix(path, prefix) {
			return prefix + "*"
		}
	}
	return path
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
