package embed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewServerRequiresAddr(t *testing.T) {
	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestNewServerAppNameFromEnv(t *testing.T) {
	t.Setenv("EMBEDCARD_APP_NAME", "Cards For Tests")

	server, err := NewServer(Config{HTTPAddr: "localhost:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/embed?title=T&desc=D", nil)
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `<meta property="og:site_name" content="Cards For Tests">`) {
		t.Fatalf("body missing env-configured site name:\n%s", w.Body.String())
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(Config{HTTPAddr: "localhost:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestListenAndServeNilGuards(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil || !strings.Contains(err.Error(), "nil") {
		t.Fatalf("nil server error = %v, want nil guard", err)
	}

	server, err := NewServer(Config{HTTPAddr: "localhost:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := server.ListenAndServe(nil); err == nil || !strings.Contains(err.Error(), "context") {
		t.Fatalf("nil context error = %v, want context guard", err)
	}
}
