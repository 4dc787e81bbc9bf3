// Package config loads server configuration from the environment, with
// an optional TOML file for the less common knobs.
//
// Precedence: defaults < TOML file (TOGGL_MCP_CONFIG) < environment.
// The API token is the only required value and is accepted from the
// environment only; it does not belong in a config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything the server needs at startup.
type Config struct {
	// APIToken authenticates every Toggl call. Required.
	APIToken string `toml:"-"`

	// BaseURL overrides the Toggl API host, mainly for tests.
	BaseURL string `toml:"base_url"`

	// HTTPTimeoutSeconds bounds each outbound call.
	HTTPTimeoutSeconds int `toml:"http_timeout_seconds"`

	// LogLevel is a charmbracelet/log level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

func defaults() Config {
	return Config{
		BaseURL:            "https://api.track.toggl.com",
		HTTPTimeoutSeconds: 30,
		LogLevel:           "info",
	}
}

// Load reads configuration. A missing TOGGL_API_TOKEN is a startup
// error: the server refuses to run rather than failing on every call.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("TOGGL_MCP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if base := os.Getenv("TOGGL_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if level := os.Getenv("TOGGL_MCP_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if secs := os.Getenv("TOGGL_HTTP_TIMEOUT_SECONDS"); secs != "" {
		v, err := strconv.Atoi(secs)
		if err != nil || v <= 0 {
			return cfg, fmt.Errorf("TOGGL_HTTP_TIMEOUT_SECONDS must be a positive integer, got %q", secs)
		}
		cfg.HTTPTimeoutSeconds = v
	}

	cfg.APIToken = os.Getenv("TOGGL_API_TOKEN")
	if cfg.APIToken == "" {
		return cfg, errors.New(
			"TOGGL_API_TOKEN environment variable is required. " +
				"Get your API token from your Toggl Track profile settings")
	}

	return cfg, nil
}

// HTTPTimeout returns the configured timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
