package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := writeConfigFile(t, `
telegram:
  token: tg-token
gemini:
  apiKey: gm-key
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Extractor.Mode != "browser" {
		t.Errorf("Expected default browser mode, got %q", cfg.Extractor.Mode)
	}
	if cfg.Extractor.TimeoutSeconds != 45 || cfg.Explain.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeouts, got %d/%d", cfg.Extractor.TimeoutSeconds, cfg.Explain.TimeoutSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected a valid config, got %v", err)
	}
}

func TestLoadConfigEnvOverlay(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := writeConfigFile(t, `
telegram:
  token: file-token
gemini:
  apiKey: file-key
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Telegram.Token != "env-token" {
		t.Errorf("Expected the env token to win, got %q", cfg.Telegram.Token)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("Expected the env key to win, got %q", cfg.Gemini.APIKey)
	}
}

func TestValidateMissingSecrets(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := writeConfigFile(t, `
server:
  port: 9000
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation to fail without secrets")
	}

	cfg.Telegram.Token = "tg"
	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation to fail without the gemini key")
	}

	cfg.Gemini.APIKey = "gm"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected a valid config, got %v", err)
	}
}

func TestValidateUnknownExtractorMode(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "tg")
	t.Setenv("GEMINI_API_KEY", "gm")

	path := writeConfigFile(t, `
extractor:
  mode: psychic
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation to reject an unknown extractor mode")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}
