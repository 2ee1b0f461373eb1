// Package config assembles runtime settings for the donapoint client from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order of precedence (later sources win).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the donapoint CLI.
type Config struct {
	// ServerBaseURL is the donation-point backend, e.g. "http://localhost:8000".
	ServerBaseURL string `env:"DONAPOINT_SERVER_URL" validate:"url"`

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration `env:"DONAPOINT_REQUEST_TIMEOUT"`

	// SearchRadiusKm bounds location-based listings, mirroring the
	// backend's accepted range.
	SearchRadiusKm float64 `env:"DONAPOINT_SEARCH_RADIUS_KM" validate:"gt=0,lte=1000"`

	// DatabasePath is the local SQLite file holding the persisted session.
	DatabasePath string `env:"DONAPOINT_DB_PATH" validate:"required"`

	LogLevel  string `env:"DONAPOINT_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `env:"DONAPOINT_LOG_FORMAT" validate:"oneof=text json"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.SearchRadiusKm = 50
	c.DatabasePath = "donapoint.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given), the environment, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
