package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func resetArgs(t *testing.T) {
	t.Helper()
	orig := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_RequiresSecretAndAPIKey(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("GEMINI_API_KEY")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected startup error when secrets are missing")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected startup error when API key is missing")
	}

	t.Setenv("GEMINI_API_KEY", "key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.SecretKey != "s3cret" || cfg.GeminiAPIKey != "key" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EndpointAddr != ":8080" {
		t.Fatalf("unexpected address: %s", cfg.EndpointAddr)
	}
	if cfg.TokenValidityDuration != 7*24*time.Hour {
		t.Fatalf("unexpected token validity: %v", cfg.TokenValidityDuration)
	}
	if cfg.Debug {
		t.Fatal("debug should default to false")
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://example/db")
	t.Setenv("TOKEN_VALIDITY", "48h")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EndpointAddr != ":9999" {
		t.Fatalf("unexpected address: %s", cfg.EndpointAddr)
	}
	if cfg.DatabaseDSN != "postgres://example/db" {
		t.Fatalf("unexpected dsn: %s", cfg.DatabaseDSN)
	}
	if cfg.TokenValidityDuration != 48*time.Hour {
		t.Fatalf("unexpected validity: %v", cfg.TokenValidityDuration)
	}
	if !cfg.Debug {
		t.Fatal("debug should be enabled")
	}
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("ADDRESS", ":9999")
	os.Args = []string{"testbin", "-a", ":7777", "-s", "flag-secret", "-t", "24"}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EndpointAddr != ":7777" {
		t.Fatalf("unexpected address: %s", cfg.EndpointAddr)
	}
	if cfg.SecretKey != "flag-secret" {
		t.Fatalf("unexpected secret: %s", cfg.SecretKey)
	}
	if cfg.TokenValidityDuration != 24*time.Hour {
		t.Fatalf("unexpected validity: %v", cfg.TokenValidityDuration)
	}
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADDRESS", "")
	t.Setenv("TOKEN_VALIDITY", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("ADDRESS")
	os.Unsetenv("TOKEN_VALIDITY")

	file := filepath.Join(t.TempDir(), "conf.json")
	content := `{"endpoint_addr": ":6060", "secret_key": "json-secret", "token_validity_duration": "24h"}`
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Args = []string{"testbin", "-c", file}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.EndpointAddr != ":6060" {
		t.Fatalf("unexpected address: %s", cfg.EndpointAddr)
	}
	if cfg.SecretKey != "json-secret" {
		t.Fatalf("unexpected secret: %s", cfg.SecretKey)
	}
	if cfg.TokenValidityDuration != 24*time.Hour {
		t.Fatalf("unexpected validity: %v", cfg.TokenValidityDuration)
	}
}

func TestLoadConfig_JSONFileMissing(t *testing.T) {
	resetArgs(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("GEMINI_API_KEY", "k")
	os.Args = []string{"testbin", "-c", "/nonexistent/conf.json"}

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
