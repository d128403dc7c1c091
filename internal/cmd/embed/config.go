// Package embed parses configuration and runs the embed service.
package embed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	platformotel "github.com/louisbranch/embedcard/internal/platform/otel"
	embedservice "github.com/louisbranch/embedcard/internal/services/embed"
)

const defaultHTTPAddr = "localhost:8095"

// Config holds the embed command configuration.
type Config struct {
	HTTPAddr string
	AppName  string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config, layering flags over environment
// variables over defaults.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr: envOrDefault(lookup, []string{"EMBEDCARD_HTTP_ADDR"}, defaultHTTPAddr),
		AppName:  envOrDefault(lookup, []string{"EMBEDCARD_APP_NAME"}, ""),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "product display name on rendered cards")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the embed server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := platformotel.Setup(ctx, "embed")
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown telemetry: %v", err)
		}
	}()

	server, err := embedservice.NewServer(embedservice.Config{
		HTTPAddr: cfg.HTTPAddr,
		AppName:  cfg.AppName,
	})
	if err != nil {
		return fmt.Errorf("init embed server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve embed: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
