package embed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/embedcard/internal/platform/branding"
	"github.com/louisbranch/embedcard/internal/platform/config"
	"github.com/louisbranch/embedcard/internal/platform/timeouts"
)

// Config defines the inputs for the embed server.
type Config struct {
	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string
	// AppName overrides the product display name on rendered cards.
	// Empty falls back to the EMBEDCARD_APP_NAME variable, then branding.
	AppName string
}

type serverEnv struct {
	AppName string `env:"EMBEDCARD_APP_NAME"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	return cfg
}

// Server hosts the embed HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured embed server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(cfg.AppName) == "" {
		cfg.AppName = loadServerEnv().AppName
	}
	if strings.TrimSpace(cfg.AppName) == "" {
		cfg.AppName = branding.AppName
	}

	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("init embed handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("embed server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("embed server listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
