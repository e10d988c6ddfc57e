package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays cfg with GEMVAULT_* environment variables. Secrets (the
// API token, login credentials, S3 keys) are expected to arrive this way
// rather than on the command line.
func parseEnv(cfg *Config) {
	envString(&cfg.APIBaseURL, "GEMVAULT_API_BASE_URL")
	envString(&cfg.APIToken, "GEMVAULT_API_TOKEN")
	envString(&cfg.PublicBaseURL, "GEMVAULT_PUBLIC_BASE_URL")
	envString(&cfg.AuthEmail, "GEMVAULT_AUTH_EMAIL")
	envString(&cfg.AuthPassword, "GEMVAULT_AUTH_PASSWORD")
	envString(&cfg.TokenFile, "GEMVAULT_TOKEN_FILE")
	envString(&cfg.S3Endpoint, "GEMVAULT_S3_ENDPOINT")
	envString(&cfg.S3Region, "GEMVAULT_S3_REGION")
	envString(&cfg.S3Bucket, "GEMVAULT_S3_BUCKET")
	envString(&cfg.S3AccessKey, "GEMVAULT_S3_ACCESS_KEY")
	envString(&cfg.S3SecretKey, "GEMVAULT_S3_SECRET_KEY")
	envString(&cfg.S3PublicURL, "GEMVAULT_S3_PUBLIC_URL")
	envString(&cfg.S3KeyPrefix, "GEMVAULT_S3_KEY_PREFIX")
	envString(&cfg.LogLevel, "GEMVAULT_LOG_LEVEL")

	envDuration(&cfg.RequestTimeout, "GEMVAULT_REQUEST_TIMEOUT")
	envDuration(&cfg.DebounceInterval, "GEMVAULT_DEBOUNCE_INTERVAL")

	if v, ok := os.LookupEnv("GEMVAULT_PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}
