// Package config loads command line settings from an optional .env file and
// GOCOMMONS_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. GOCOMMONS_LOG_LEVEL.
const Prefix = "GOCOMMONS"

// Config holds all settings.
type Config struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev        bool   `envconfig:"LOG_DEV" default:"false"`
	SevenZip      string `envconfig:"SEVENZIP"`
	Sudo          bool   `envconfig:"SUDO" default:"true"`
	ExtendedPaths bool   `envconfig:"EXTENDED_PATHS" default:"false"`
}

// Load reads envFile into the environment when it exists, without overriding
// variables that are already set, then processes the environment. An empty
// envFile skips the file step.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Sudo:     true,
	}
}

// LoadOrDefault loads configuration or falls back to Default.
func LoadOrDefault(envFile string) *Config {
	cfg, err := Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		return Default()
	}
	return cfg
}
