package infra

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	unsetEnv(t, "APP_ENV", "PORT", "TRIGRAM_THRESHOLD", "DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE", "CACHE_TTL", "CORS_ALLOWED_ORIGINS", "TRUST_PROXY_HEADERS")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3001" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3001")
	}
	if cfg.AppEnv != "production" {
		t.Fatalf("AppEnv mismatch: got %q want %q", cfg.AppEnv, "production")
	}
	if cfg.TrigramThreshold != 0.6 {
		t.Fatalf("TrigramThreshold mismatch: got %v want 0.6", cfg.TrigramThreshold)
	}
	if cfg.DefaultPageSize != 50 || cfg.MaxPageSize != 500 {
		t.Fatalf("page sizes mismatch: got %d/%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("CacheTTL mismatch: got %s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production mode by default")
	}
	if cfg.TrustProxyHeaders {
		t.Fatalf("proxy headers must not be trusted by default")
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is empty")
	}
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("APP_ENV", "development")
	t.Setenv("TRIGRAM_THRESHOLD", "0.45")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development mode")
	}
	if cfg.TrigramThreshold != 0.45 {
		t.Fatalf("TrigramThreshold mismatch: got %v", cfg.TrigramThreshold)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, want)
	}
	for i, origin := range want {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
	if cfg.HTTPReadTimeout != 3*time.Second {
		t.Fatalf("HTTPReadTimeout mismatch: got %s", cfg.HTTPReadTimeout)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Fatalf("RateLimitPerMin mismatch: got %d", cfg.RateLimitPerMin)
	}
	if !cfg.TrustProxyHeaders {
		t.Fatalf("TrustProxyHeaders not parsed")
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		return Config{TrigramThreshold: 0.6, DefaultPageSize: 50, MaxPageSize: 500, DBMaxConns: 10}
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero threshold", mutate: func(c *Config) { c.TrigramThreshold = 0 }, wantErr: true},
		{name: "threshold above one", mutate: func(c *Config) { c.TrigramThreshold = 1.2 }, wantErr: true},
		{name: "threshold of one", mutate: func(c *Config) { c.TrigramThreshold = 1 }},
		{name: "threshold below trigram operator floor", mutate: func(c *Config) { c.TrigramThreshold = 0.2 }, wantErr: true},
		{name: "threshold at trigram operator floor", mutate: func(c *Config) { c.TrigramThreshold = 0.3 }},
		{name: "max below default", mutate: func(c *Config) { c.MaxPageSize = 10 }, wantErr: true},
		{name: "zero default page", mutate: func(c *Config) { c.DefaultPageSize = 0 }, wantErr: true},
		{name: "no db conns", mutate: func(c *Config) { c.DBMaxConns = 0 }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimitPerMin = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
