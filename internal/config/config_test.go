package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "APP_CONFIG", "PORT", "OPENAI_CHAT_MODEL", "CHAT_CATALOG_LIMIT")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Server.Port)
	}
	if cfg.Chat.Model != "gpt-3.5-turbo" {
		t.Fatalf("default model = %q", cfg.Chat.Model)
	}
	if cfg.Chat.CatalogLimit != 200 {
		t.Fatalf("default catalog limit = %d", cfg.Chat.CatalogLimit)
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		t.Fatalf("default CORS origins must not be empty")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t, "PORT", "OPENAI_CHAT_MODEL", "CHAT_CATALOG_LIMIT")

	path := filepath.Join(t.TempDir(), "app.yaml")
	body := []byte("server:\n  port: \"9090\"\nchat:\n  model: gpt-4o-mini\n  catalog_limit: 50\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("APP_CONFIG", path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Chat.Model != "gpt-4o-mini" {
		t.Fatalf("model = %q", cfg.Chat.Model)
	}
	if cfg.Chat.CatalogLimit != 50 {
		t.Fatalf("catalog limit = %d", cfg.Chat.CatalogLimit)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("APP_CONFIG", path)
	t.Setenv("PORT", "7070")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4")
	t.Setenv("CHAT_CATALOG_LIMIT", "25")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("env override lost, port = %q", cfg.Server.Port)
	}
	if cfg.Chat.Model != "gpt-4" {
		t.Fatalf("env override lost, model = %q", cfg.Chat.Model)
	}
	if cfg.Chat.CatalogLimit != 25 {
		t.Fatalf("env override lost, catalog limit = %d", cfg.Chat.CatalogLimit)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("APP_CONFIG", path)

	if _, err := Load(nil); err == nil {
		t.Fatalf("Load must fail on a malformed config file")
	}
}

func TestLoadNonPositiveCatalogLimit(t *testing.T) {
	clearEnv(t, "APP_CONFIG", "PORT", "OPENAI_CHAT_MODEL")
	t.Setenv("CHAT_CATALOG_LIMIT", "-5")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Chat.CatalogLimit != 200 {
		t.Fatalf("non-positive limit must fall back to the default, got %d", cfg.Chat.CatalogLimit)
	}
}
