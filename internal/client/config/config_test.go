package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"gemvault"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 400*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "gemvault-media", cfg.S3Bucket)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.TokenFile, ".gemvault")
}

func TestLoadConfig_Json(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://api.gems.example.com",
		"debounce_interval": "250ms",
		"request_timeout": "30s",
		"page_size": 24,
		"auth_email": "jeweler@example.com"
	}`)
	setArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://api.gems.example.com", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24, cfg.PageSize)
	assert.Equal(t, "jeweler@example.com", cfg.AuthEmail)
	// Untouched fields keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_JsonDurationAsNanos(t *testing.T) {
	path := writeConfigFile(t, `{"debounce_interval": 500000000}`)
	setArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval)
}

func TestLoadConfig_Env(t *testing.T) {
	setArgs(t)
	t.Setenv("GEMVAULT_API_TOKEN", "tkn-env")
	t.Setenv("GEMVAULT_S3_ACCESS_KEY", "minio")
	t.Setenv("GEMVAULT_S3_SECRET_KEY", "minio123")
	t.Setenv("GEMVAULT_DEBOUNCE_INTERVAL", "150ms")
	t.Setenv("GEMVAULT_PAGE_SIZE", "6")

	cfg := LoadConfig()

	assert.Equal(t, "tkn-env", cfg.APIToken)
	assert.Equal(t, "minio", cfg.S3AccessKey)
	assert.Equal(t, "minio123", cfg.S3SecretKey)
	assert.Equal(t, 150*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, 6, cfg.PageSize)
}

func TestLoadConfig_Flags(t *testing.T) {
	setArgs(t, "-a", "https://flags.example.com", "-p", "8", "-d", "100", "-l", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "https://flags.example.com", cfg.APIBaseURL)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, 100*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "https://json.example.com", "log_level": "warn"}`)
	setArgs(t, "-c", path, "-a", "https://flags.example.com")
	t.Setenv("GEMVAULT_API_BASE_URL", "https://env.example.com")
	t.Setenv("GEMVAULT_LOG_LEVEL", "error")

	cfg := LoadConfig()

	// Flags beat env, env beats JSON.
	assert.Equal(t, "https://flags.example.com", cfg.APIBaseURL)
	assert.Equal(t, "error", cfg.LogLevel)
}
