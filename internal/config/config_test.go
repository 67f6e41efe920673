package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:                       "test",
		HTTPPort:                  "8080",
		DatabaseURL:               "postgres://localhost:5432/taskvault",
		TokenKey:                  strings.Repeat("k", 32),
		TokenIssuer:               "taskvault-api",
		RegisterTokenTTL:          12 * time.Hour,
		LoginTokenTTL:             time.Hour,
		AuthRateLimitPerMin:       30,
		APIRateLimitPerMin:        120,
		OTELExporterOTLPEndpoint:  "localhost:4317",
		OTELMetricsExportInterval: 10 * time.Second,
		OTELTraceSamplingRatio:    1.0,
		OTELLogLevel:              "info",
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsMissingPieces(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, "DATABASE_URL"},
		{"missing token key", func(c *Config) { c.TokenKey = "" }, "TOKEN_KEY"},
		{"short token key", func(c *Config) { c.TokenKey = "short" }, "TOKEN_KEY"},
		{"missing port", func(c *Config) { c.HTTPPort = "" }, "API_PORT"},
		{"zero register ttl", func(c *Config) { c.RegisterTokenTTL = 0 }, "TOKEN_TTL_REGISTER"},
		{"oversized login ttl", func(c *Config) { c.LoginTokenTTL = 48 * time.Hour }, "TOKEN_TTL_LOGIN"},
		{"zero auth rate limit", func(c *Config) { c.AuthRateLimitPerMin = 0 }, "AUTH_RATE_LIMIT_PER_MIN"},
		{"bad sampling ratio", func(c *Config) { c.OTELTraceSamplingRatio = 2 }, "OTEL_TRACE_SAMPLING_RATIO"},
		{"bad log level", func(c *Config) { c.OTELLogLevel = "verbose" }, "OTEL_LOG_LEVEL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadDefaultsTokenLifetimes(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskvault")
	t.Setenv("TOKEN_KEY", strings.Repeat("k", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RegisterTokenTTL != 12*time.Hour {
		t.Fatalf("expected 12h register ttl, got %v", cfg.RegisterTokenTTL)
	}
	if cfg.LoginTokenTTL != time.Hour {
		t.Fatalf("expected 1h login ttl, got %v", cfg.LoginTokenTTL)
	}
}

func TestLoadFailsFastWithoutSigningKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskvault")
	t.Setenv("TOKEN_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected load to fail without TOKEN_KEY")
	}
}
