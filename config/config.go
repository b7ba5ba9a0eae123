// Package config loads the server settings from .env and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "3000"
	DefaultNewsAPIURL      = "https://santri.pondokinformatika.id/api/get/news"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

var (
	ErrInvalidPort      = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidAPIURL    = errors.New("NEWS_API_URL must be an absolute http(s) URL")
	ErrInvalidTimeout   = errors.New("UPSTREAM_TIMEOUT must be a positive duration")
	ErrInvalidLogLevel  = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be 'text' or 'json'")
)

// Config holds process configuration. It is read once at startup.
type Config struct {
	Port            string
	NewsAPIURL      string
	UpstreamTimeout time.Duration
	LogLevel        string
	LogFormat       string
	AllowedOrigins  []string
}

// Load reads the optional env files and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing .env is fine, the environment alone is enough
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:           getEnv("PORT", DefaultPort),
		NewsAPIURL:     getEnv("NEWS_API_URL", DefaultNewsAPIURL),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	timeout := DefaultUpstreamTimeout
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
		}
		timeout = d
	}
	cfg.UpstreamTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}

	u, err := url.Parse(c.NewsAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}

	if c.UpstreamTimeout <= 0 {
		return ErrInvalidTimeout
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// Addr is the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, NewsAPIURL: %s, UpstreamTimeout: %s, LogLevel: %s}",
		c.Port, c.NewsAPIURL, c.UpstreamTimeout, c.LogLevel)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
