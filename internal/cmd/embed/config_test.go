package embed

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8095")
	}
	if cfg.AppName != "" {
		t.Fatalf("AppName = %q, want empty", cfg.AppName)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Parallel()

	lookup := func(key string) (string, bool) {
		switch key {
		case "EMBEDCARD_HTTP_ADDR":
			return ":9000", true
		case "EMBEDCARD_APP_NAME":
			return "Cards", true
		}
		return "", false
	}

	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, lookup)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9000")
	}
	if cfg.AppName != "Cards" {
		t.Fatalf("AppName = %q, want %q", cfg.AppName, "Cards")
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Parallel()

	lookup := func(string) (string, bool) { return ":9000", true }

	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", ":9100"}, lookup)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9100")
	}
}

func TestParseConfigIgnoresBlankEnv(t *testing.T) {
	t.Parallel()

	lookup := func(string) (string, bool) { return "   ", true }

	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, lookup)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("HTTPAddr = %q, want default for blank env", cfg.HTTPAddr)
	}
}
