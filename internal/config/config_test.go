package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret-0123456789abcdef0123456789
rawg:
  api_key: test-key
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "./data/zerai.db" {
		t.Errorf("Database.Path = %q, want ./data/zerai.db", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 1h", cfg.Auth.TokenTTL)
	}
	if cfg.RAWG.BaseURL != "https://api.rawg.io/api" {
		t.Errorf("RAWG.BaseURL = %q, want RAWG default", cfg.RAWG.BaseURL)
	}
	if cfg.RAWG.Timeout != 10*time.Second {
		t.Errorf("RAWG.Timeout = %v, want 10s", cfg.RAWG.Timeout)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	path := writeConfig(t, `
rawg:
  api_key: test-key
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want missing jwt_secret error")
	}
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: tooshort
rawg:
  api_key: test-key
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want short jwt_secret error")
	}
}

func TestLoadRequiresRAWGAPIKey(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret-0123456789abcdef0123456789
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want missing api_key error")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZERAI_JWT_SECRET", "env-secret-0123456789abcdef01234567")
	t.Setenv("ZERAI_RAWG_API_KEY", "env-key")

	path := writeConfig(t, `
auth:
  jwt_secret: file-secret-0123456789abcdef0123456
rawg:
  api_key: file-key
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "env-secret-0123456789abcdef01234567" {
		t.Errorf("Auth.JWTSecret = %q, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.RAWG.APIKey != "env-key" {
		t.Errorf("RAWG.APIKey = %q, want env override", cfg.RAWG.APIKey)
	}
}
