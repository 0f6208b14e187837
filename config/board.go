package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// BoardConfig holds configuration for the board client.
type BoardConfig struct {
	// BaseURL is the backend address, e.g. "http://localhost:8080".
	BaseURL string `toml:"base_url"`
	// TimeoutSeconds bounds each backend request.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// HideDelayMS is how long feedback messages stay visible.
	HideDelayMS int `toml:"hide_delay_ms"`
	// Locale selects the label language, e.g. "en" or "es".
	Locale string `toml:"locale"`
}

// LoadBoard reads the board config from the TOML file at path. A missing
// file yields defaults; the ACTIVITYBOARD_URL environment variable
// overrides base_url either way.
func LoadBoard(path string) (*BoardConfig, error) {
	cfg := &BoardConfig{
		BaseURL:        "http://localhost:8080",
		TimeoutSeconds: 10,
		HideDelayMS:    5000,
		Locale:         "en",
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read board config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse board config %s: %w", path, err)
		}
	}

	if url := os.Getenv("ACTIVITYBOARD_URL"); url != "" {
		cfg.BaseURL = url
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.HideDelayMS <= 0 {
		cfg.HideDelayMS = 5000
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c *BoardConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HideDelay returns the message auto-hide delay as a duration.
func (c *BoardConfig) HideDelay() time.Duration {
	return time.Duration(c.HideDelayMS) * time.Millisecond
}
