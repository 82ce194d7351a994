package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultUserAgent is the browser identity sent with every page fetch.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Auth   AuthConfig   `yaml:"auth"`
	Batch  BatchConfig  `yaml:"batch"`
	Share  ShareConfig  `yaml:"share"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string `yaml:"host"` // default: "0.0.0.0"
	Port int    `yaml:"port"` // default: 5000
	Mode string `yaml:"mode"` // "debug", "release", "test"; default: "release"

	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS
	// headers.
	CORSOrigin string `yaml:"corsOrigin"` // default: "*"
}

// FetchConfig controls outbound page fetches.
type FetchConfig struct {
	// Timeout bounds a single fetch, connection through body read.
	Timeout time.Duration `yaml:"timeout"` // default: 10s

	// UserAgent is the User-Agent header sent with each request.
	UserAgent string `yaml:"userAgent"`

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64 `yaml:"maxBodyBytes"` // default: 10 MB

	// MaxRedirects caps redirect following.
	MaxRedirects int `yaml:"maxRedirects"` // default: 10

	// Proxy is an optional http(s) proxy URL for all fetches.
	Proxy string `yaml:"proxy"`
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool `yaml:"enabled"` // default: false

	// APIKeys is the list of accepted API keys.
	APIKeys []string `yaml:"apiKeys"`
}

// BatchConfig controls POST /api/v1/extract/batch.
type BatchConfig struct {
	// MaxURLs is the largest accepted batch.
	MaxURLs int `yaml:"maxURLs"` // default: 50

	// Concurrency is the number of extractions run at once per batch.
	Concurrency int `yaml:"concurrency"` // default: 5
}

// ShareConfig controls share link generation.
type ShareConfig struct {
	// BaseURL is the page share links point at when the request names none.
	BaseURL string `yaml:"baseURL"` // default: "http://localhost:5000/"
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // default: "info"
	Format string `yaml:"format"` // "json" or "text"; default: "json"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       5000,
			Mode:       "release",
			CORSOrigin: "*",
		},
		Fetch: FetchConfig{
			Timeout:      10 * time.Second,
			UserAgent:    DefaultUserAgent,
			MaxBodyBytes: 10 << 20,
			MaxRedirects: 10,
		},
		Batch: BatchConfig{
			MaxURLs:     50,
			Concurrency: 5,
		},
		Share: ShareConfig{
			BaseURL: "http://localhost:5000/",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// COOKLY_CONFIG (if any), then environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("COOKLY_CONFIG"); path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from COOKLY_* environment variables. PORT is
// honoured as a fallback for COOKLY_PORT.
func (c *Config) applyEnv() {
	c.Server.Host = envOr("COOKLY_HOST", c.Server.Host)
	c.Server.Port = envIntOr("COOKLY_PORT", envIntOr("PORT", c.Server.Port))
	c.Server.Mode = envOr("COOKLY_MODE", c.Server.Mode)
	c.Server.CORSOrigin = envOr("COOKLY_CORS_ORIGIN", c.Server.CORSOrigin)

	c.Fetch.Timeout = envDurationOr("COOKLY_FETCH_TIMEOUT", c.Fetch.Timeout)
	c.Fetch.UserAgent = envOr("COOKLY_USER_AGENT", c.Fetch.UserAgent)
	c.Fetch.MaxBodyBytes = int64(envIntOr("COOKLY_MAX_BODY_BYTES", int(c.Fetch.MaxBodyBytes)))
	c.Fetch.MaxRedirects = envIntOr("COOKLY_MAX_REDIRECTS", c.Fetch.MaxRedirects)
	c.Fetch.Proxy = envOr("COOKLY_PROXY", c.Fetch.Proxy)

	c.Auth.Enabled = envBoolOr("COOKLY_AUTH_ENABLED", c.Auth.Enabled)
	c.Auth.APIKeys = envSliceOr("COOKLY_API_KEYS", c.Auth.APIKeys)

	c.Batch.MaxURLs = envIntOr("COOKLY_BATCH_MAX_URLS", c.Batch.MaxURLs)
	c.Batch.Concurrency = envIntOr("COOKLY_BATCH_CONCURRENCY", c.Batch.Concurrency)

	c.Share.BaseURL = envOr("COOKLY_SHARE_BASE_URL", c.Share.BaseURL)

	c.Log.Level = envOr("COOKLY_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("COOKLY_LOG_FORMAT", c.Log.Format)
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config: fetch timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("config: batch concurrency must be positive, got %d", c.Batch.Concurrency)
	}
	if c.Batch.MaxURLs <= 0 {
		return fmt.Errorf("config: batch max URLs must be positive, got %d", c.Batch.MaxURLs)
	}
	return nil
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
