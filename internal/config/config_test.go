package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/contacts")
	t.Setenv("SECRET_KEY_JWT", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTAlgorithm != "HS256" {
		t.Fatalf("ALGORITHM default want HS256, got %s", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("AccessTokenTTL want 15m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTokenTTL want 168h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.EmailTokenTTL != 24*time.Hour {
		t.Fatalf("EmailTokenTTL want 24h, got %v", cfg.EmailTokenTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTAlgorithm != "HS512" {
		t.Fatalf("ALGORITHM want HS512, got %s", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RedisAddress != "localhost:6379" {
		t.Fatalf("RedisAddress got %s", cfg.RedisAddress)
	}
}

func TestLoad_RejectsUnknownAlgorithm(t *testing.T) {
	setRequired(t)
	t.Setenv("ALGORITHM", "RS256")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for ALGORITHM=RS256, got nil")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/contacts")
	t.Setenv("SECRET_KEY_JWT", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing SECRET_KEY_JWT, got nil")
	}
}
