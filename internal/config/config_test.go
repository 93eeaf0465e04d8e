package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Gateway.BaseURL != "http://localhost:5678" {
		t.Errorf("unexpected gateway base url: %s", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.Timeout != 30*time.Second {
		t.Errorf("expected 30s gateway timeout, got %v", cfg.Gateway.Timeout)
	}
	if cfg.Chat.OrganizationID != "demo-org" || cfg.Chat.UserID != "demo-user" {
		t.Errorf("unexpected chat defaults: %+v", cfg.Chat)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
server:
  port: 9090
gateway:
  base_url: https://automation.internal
  api_key: secret
  timeout: 10s
admin:
  api_key: admin-secret
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Gateway.BaseURL != "https://automation.internal" {
		t.Errorf("unexpected gateway base url: %s", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.APIKey != "secret" {
		t.Errorf("unexpected gateway api key: %s", cfg.Gateway.APIKey)
	}
	if cfg.Gateway.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Gateway.Timeout)
	}
	// Unset values keep their defaults
	if cfg.Database.Path != "./data/docmind.db" {
		t.Errorf("unexpected database path: %s", cfg.Database.Path)
	}
}

func TestAddress(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8081

	if got := cfg.Address(); got != "127.0.0.1:8081" {
		t.Errorf("expected 127.0.0.1:8081, got %s", got)
	}
}
