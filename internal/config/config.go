// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds every setting of the costshare server.
type Config struct {
	// HTTP server
	Port       int    `env:"PORT" envDefault:"8080"`
	StaticPath string `env:"STATIC_PATH" envDefault:"./web/static"`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/costshare.db"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Ledger access tokens
	AuthSecret string        `env:"AUTH_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Display
	CurrencyLocale string `env:"CURRENCY_LOCALE" envDefault:"fa-IR"`
	CurrencyUnit   string `env:"CURRENCY_UNIT" envDefault:"تومان"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.AuthSecret != "" && len(c.AuthSecret) < 32 {
		problems = append(problems, "auth secret must be at least 32 characters")
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid token TTL %s: must be positive", c.TokenTTL))
	}

	if _, err := language.Parse(c.CurrencyLocale); err != nil {
		problems = append(problems, fmt.Sprintf("invalid currency locale '%s': %v", c.CurrencyLocale, err))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether passcode-protected ledgers can issue tokens.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}
