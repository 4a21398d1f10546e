package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("FRONTEND_CLIENT_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without FRONTEND_CLIENT_TOKEN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("FRONTEND_CLIENT_TOKEN", "front-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Security.AccessTTL != 15*time.Minute {
		t.Fatalf("expected default access ttl 15m, got %v", cfg.Security.AccessTTL)
	}
	if cfg.Security.RateLimitRPS != 20 {
		t.Fatalf("expected default rate limit 20, got %d", cfg.Security.RateLimitRPS)
	}
	if cfg.Postgres.MaxConns != 25 {
		t.Fatalf("expected default max conns 25, got %d", cfg.Postgres.MaxConns)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("FRONTEND_CLIENT_TOKEN", "front-token")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("CORS_ORIGINS", "https://vagas.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Security.AccessTTL != 5*time.Minute {
		t.Fatalf("expected access ttl 5m, got %v", cfg.Security.AccessTTL)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
}
