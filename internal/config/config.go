package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/condoportal/backend/internal/logging"
)

// Config holds all runtime settings for the API server.
type Config struct {
	Port        string
	FrontendURL string

	LogLevel  string
	LogFormat string // "json" or "text"

	// Location is the time zone used to compute maintenance dates.
	Location *time.Location

	// RateLimitPerMinute caps POST requests per client IP. 0 disables limiting.
	RateLimitPerMinute int
	// TrustedProxies is how many reverse proxies append to X-Forwarded-For.
	TrustedProxies     int
	MetricsEnabled     bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	p := &parser{}
	cfg := &Config{
		Port:               p.str("PORT", "8080"),
		FrontendURL:        p.str("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:           p.str("LOG_LEVEL", "INFO"),
		LogFormat:          strings.ToLower(p.str("LOG_FORMAT", "json")),
		Location:           p.location("TIMEZONE"),
		RateLimitPerMinute: p.intVal("RATE_LIMIT_PER_MINUTE", 30),
		TrustedProxies:     p.intVal("TRUSTED_PROXIES", 0),
		MetricsEnabled:     p.boolVal("METRICS_ENABLED", true),
		ReadTimeout:        p.duration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       p.duration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		p.fail("LOG_LEVEL", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		p.fail("LOG_FORMAT", fmt.Errorf("must be json or text, got %q", cfg.LogFormat))
	}
	if cfg.RateLimitPerMinute < 0 {
		p.fail("RATE_LIMIT_PER_MINUTE", errors.New("must not be negative"))
	}
	if cfg.TrustedProxies < 0 {
		p.fail("TRUSTED_PROXIES", errors.New("must not be negative"))
	}

	if len(p.errs) > 0 {
		return nil, fmt.Errorf("load config: %w", errors.Join(p.errs...))
	}
	return cfg, nil
}

// parser reads typed environment values and collects every failure.
type parser struct {
	errs []error
}

func (p *parser) fail(key string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) intVal(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return n
}

func (p *parser) boolVal(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return b
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	if d <= 0 {
		p.fail(key, errors.New("must be positive"))
		return def
	}
	return d
}

func (p *parser) location(key string) *time.Location {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		p.fail(key, err)
		return time.Local
	}
	return loc
}
