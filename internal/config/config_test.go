package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env file here

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/costshare.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s, want 24h", cfg.TokenTTL)
	}
	if cfg.CurrencyUnit != "تومان" {
		t.Errorf("CurrencyUnit = %q", cfg.CurrencyUnit)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("CURRENCY_LOCALE", "en-US")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Port != 9090 || cfg.Addr() != ":9090" {
		t.Errorf("Port = %d, Addr = %s", cfg.Port, cfg.Addr())
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Errorf("TokenTTL = %s, want 90m", cfg.TokenTTL)
	}
	if cfg.CurrencyLocale != "en-US" {
		t.Errorf("CurrencyLocale = %q", cfg.CurrencyLocale)
	}
	if cfg.MetricsEnabled {
		t.Error("expected metrics disabled")
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:           8080,
		DBPath:         "./data/test.db",
		LogLevel:       "info",
		LogFormat:      "text",
		TokenTTL:       time.Hour,
		CurrencyLocale: "fa-IR",
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port"},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = " " }, wantErr: "database path"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
		{name: "short secret", mutate: func(c *Config) { c.AuthSecret = "short" }, wantErr: "auth secret"},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }, wantErr: "token TTL"},
		{name: "bad locale", mutate: func(c *Config) { c.CurrencyLocale = "??" }, wantErr: "currency locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{Port: 0, LogLevel: "nope", LogFormat: "text", TokenTTL: time.Hour, CurrencyLocale: "fa"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "database path", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
