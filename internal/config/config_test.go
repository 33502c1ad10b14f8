package config

import (
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT", "FRONTEND_URL", "LOG_LEVEL", "LOG_FORMAT", "TIMEZONE",
	"RATE_LIMIT_PER_MINUTE", "TRUSTED_PROXIES", "METRICS_ENABLED",
	"READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Addr())
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("unexpected frontend URL %q", cfg.FrontendURL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %q", cfg.LogFormat)
	}
	if cfg.Location != time.Local {
		t.Errorf("expected local time zone, got %v", cfg.Location)
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.RateLimitPerMinute)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TRUSTED_PROXIES", "1")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %q", cfg.LogFormat)
	}
	if cfg.Location != time.UTC {
		t.Errorf("expected UTC, got %v", cfg.Location)
	}
	if cfg.RateLimitPerMinute != 0 {
		t.Errorf("expected rate limiting disabled, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.MetricsEnabled {
		t.Error("expected metrics disabled")
	}
	if cfg.TrustedProxies != 1 {
		t.Errorf("expected 1 trusted proxy, got %d", cfg.TrustedProxies)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("expected 30s write timeout, got %v", cfg.WriteTimeout)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")
	t.Setenv("METRICS_ENABLED", "sometimes")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("READ_TIMEOUT", "-1s")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("TRUSTED_PROXIES", "-2")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid values")
	}
	for _, key := range []string{"RATE_LIMIT_PER_MINUTE", "METRICS_ENABLED", "TIMEZONE", "READ_TIMEOUT", "LOG_FORMAT", "TRUSTED_PROXIES", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to name %s, got %v", key, err)
		}
	}
}
