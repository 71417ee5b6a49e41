package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_DURATION", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port: expected 8080, got %s", cfg.Port)
	}
	if cfg.DBPath != "./data/fintrack.db" {
		t.Errorf("db path: expected default, got %s", cfg.DBPath)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("token duration: expected 24h, got %s", cfg.TokenDuration)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "a-sufficiently-long-secret")
	t.Setenv("TOKEN_DURATION", "1h")

	cfg := Load()

	if cfg.Port != "9090" || cfg.DBPath != "/tmp/test.db" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.TokenDuration != time.Hour {
		t.Errorf("token duration: expected 1h, got %s", cfg.TokenDuration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8080",
			DBPath:        "./data/test.db",
			JWTSecret:     "a-sufficiently-long-secret",
			TokenDuration: time.Hour,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"non-numeric port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }},
		{"zero token duration", func(c *Config) { c.TokenDuration = 0 }},
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
