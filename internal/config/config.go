package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the server settings, populated from the environment with
// DASH_-prefixed variables (DASH_PORT, DASH_MAX_UPLOAD_MB, ...).
type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	MaxUploadMB    int64  `envconfig:"MAX_UPLOAD_MB" default:"32"`
	DefaultTopN    int    `envconfig:"DEFAULT_TOP_N" default:"15"`
	MultiValueAttr string `envconfig:"MULTI_VALUE_ATTR" default:"Occasion-Fit"`
	TagDelimiter   string `envconfig:"TAG_DELIMITER" default:","`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load() // absent .env is fine

	var cfg Config
	if err := envconfig.Process("dash", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}
