package config

import (
	"fmt"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with DONAPOINT_* environment variables. A .env file
// in the working directory is honored when present; its absence is fine.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}
