// Package web parses web command configuration and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/assets/catalog"
	entrypoint "github.com/louisbranch/tablekit/internal/platform/cmd"
	"github.com/louisbranch/tablekit/internal/schedule"
	"github.com/louisbranch/tablekit/internal/services/web"
	"github.com/louisbranch/tablekit/internal/services/web/chatroom"
	"github.com/louisbranch/tablekit/internal/services/web/seed"
	"github.com/louisbranch/tablekit/internal/services/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"TABLEKIT_WEB_HTTP_ADDR"             envDefault:"localhost:8080"`
	DBPath              string `env:"TABLEKIT_WEB_DB_PATH"               envDefault:"data/tablekit-web.db"`
	Timezone            string `env:"TABLEKIT_WEB_TIMEZONE"              envDefault:"UTC"`
	SeedPath            string `env:"TABLEKIT_WEB_SEED_PATH"`
	SkipSeed            bool   `env:"TABLEKIT_WEB_SKIP_SEED"`
	AssetBaseURL        string `env:"TABLEKIT_ASSET_BASE_URL"`
	TrustForwardedProto bool   `env:"TABLEKIT_WEB_TRUST_FORWARDED_PROTO"`
	ChatHistory         int    `env:"TABLEKIT_WEB_CHAT_HISTORY"          envDefault:"50"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.LoadConfig(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if _, err := loadLocation(cfg.Timezone); err != nil {
		return Config{}, err
	}
	if cfg.ChatHistory < 1 {
		return Config{}, fmt.Errorf("chat history must be positive, got %d", cfg.ChatHistory)
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "session SQLite database path")
	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "default IANA time zone for schedule day labels")
	fs.StringVar(&cfg.SeedPath, "seed-path", cfg.SeedPath, "YAML session seed loaded into an empty store (embedded demo when empty)")
	fs.BoolVar(&cfg.SkipSeed, "skip-seed", cfg.SkipSeed, "do not seed an empty store")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "image CDN base URL for session covers")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto from a TLS proxy")
	fs.IntVar(&cfg.ChatHistory, "chat-history", cfg.ChatHistory, "messages kept per chat room")
}

// Run opens storage, seeds it when empty and serves until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger := log.Default()
	service := entrypoint.Service{Name: entrypoint.ServiceWeb, Logger: logger}
	return service.Run(ctx, func(ctx context.Context) error {
		location, err := loadLocation(cfg.Timezone)
		if err != nil {
			return err
		}
		store, err := openSessionStore(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close session store: %v", err)
			}
		}()

		clock := schedule.SystemClock{}
		if !cfg.SkipSeed {
			seeded, err := seedStore(ctx, store, cfg.SeedPath, clock.Now(), location)
			if err != nil {
				return err
			}
			if seeded > 0 {
				logger.Printf("seeded sessions count=%d", seeded)
			}
		}

		covers, err := catalog.SessionCoverManifest()
		if err != nil {
			return err
		}
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			AssetBaseURL:        cfg.AssetBaseURL,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Sessions:            store,
			Chat:                chatroom.New(chatroom.Options{History: cfg.ChatHistory, Clock: clock}),
			Clock:               clock,
			Location:            location,
			Covers:              covers,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		logger.Printf("web listening addr=%s timezone=%s", server.Addr(), location)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func openSessionStore(ctx context.Context, path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open session sqlite store: %w", err)
	}
	return store, nil
}

// seedStore loads the seed at path, or the embedded demo, into an empty store.
func seedStore(ctx context.Context, store *sqlite.Store, path string, now time.Time, location *time.Location) (int, error) {
	r, err := seed.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed: %w", err)
	}
	defer r.Close()
	records, err := seed.Decode(r, now, location)
	if err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}
	count, err := seed.Apply(ctx, store, records)
	if err != nil {
		return 0, fmt.Errorf("apply seed: %w", err)
	}
	return count, nil
}

func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return location, nil
}
