// Package config assembles the CLI runtime settings from layered sources:
// defaults, a JSON file, environment variables and command-line flags, in
// that order of precedence (later wins).
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the GemVault CLI.
type Config struct {
	// Catalog API.
	APIBaseURL     string
	APIToken       string
	RequestTimeout time.Duration

	// Public site, used for QR deep links.
	PublicBaseURL string

	// List behavior.
	DebounceInterval time.Duration
	PageSize         int

	// Login credentials and the encrypted token file.
	AuthEmail    string
	AuthPassword string
	TokenFile    string

	// Object storage for gemstone media.
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
	S3KeyPrefix string

	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	c.APIBaseURL = "http://localhost:3000"
	c.PublicBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DebounceInterval = 400 * time.Millisecond
	c.PageSize = 12
	c.TokenFile = filepath.Join(home, ".gemvault", "token.json")
	c.S3Region = "us-east-1"
	c.S3Bucket = "gemvault-media"
	c.S3KeyPrefix = "gemstones"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
