package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/msurana/gemvault/internal/flagx"
)

// duration lets JSON specify intervals as strings like "400ms" or as integer
// nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards; absent fields leave the current
// value in place.
type JsonConfig struct {
	APIBaseURL       string   `json:"api_base_url"`
	APIToken         string   `json:"api_token"`
	RequestTimeout   duration `json:"request_timeout"`
	PublicBaseURL    string   `json:"public_base_url"`
	DebounceInterval duration `json:"debounce_interval"`
	PageSize         int      `json:"page_size"`
	AuthEmail        string   `json:"auth_email"`
	AuthPassword     string   `json:"auth_password"`
	TokenFile        string   `json:"token_file"`
	S3Endpoint       string   `json:"s3_endpoint"`
	S3Region         string   `json:"s3_region"`
	S3Bucket         string   `json:"s3_bucket"`
	S3AccessKey      string   `json:"s3_access_key"`
	S3SecretKey      string   `json:"s3_secret_key"`
	S3PublicURL      string   `json:"s3_public_url"`
	S3KeyPrefix      string   `json:"s3_key_prefix"`
	LogLevel         string   `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag, no JSON. Read or unmarshal errors panic; loading a
// broken config file is not recoverable.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.APIToken, jc.APIToken)
	setString(&cfg.PublicBaseURL, jc.PublicBaseURL)
	setString(&cfg.AuthEmail, jc.AuthEmail)
	setString(&cfg.AuthPassword, jc.AuthPassword)
	setString(&cfg.TokenFile, jc.TokenFile)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3PublicURL, jc.S3PublicURL)
	setString(&cfg.S3KeyPrefix, jc.S3KeyPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DebounceInterval.Duration > 0 {
		cfg.DebounceInterval = jc.DebounceInterval.Duration
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
