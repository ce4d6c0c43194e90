package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "MUD_LOG_LEVEL"
	EnvLogFormat = "MUD_LOG_FORMAT"
	EnvColor     = "MUD_COLOR"
)

// Config holds the application configuration
type Config struct {
	LogLevel  string
	LogFormat string
	Color     bool
}

// Load loads the configuration from environment variables, after applying a
// .env file from the working directory when one exists.
func Load(files ...string) (*Config, error) {
	// Missing .env files are fine; real environment variables still apply.
	_ = godotenv.Load(files...)

	cfg := &Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "warn")),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, "text")),
	}

	color, err := strconv.ParseBool(getEnv(EnvColor, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvColor, err)
	}
	cfg.Color = color

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the logging settings name known values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid %s value %q", EnvLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid %s value %q", EnvLogFormat, c.LogFormat)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
