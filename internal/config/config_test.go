package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullYAML = `
server:
  base_url: https://fleet.example.com/
  timeout_seconds: 30

username: admin

stats:
  refresh_cron: "*/5 * * * *"
`

const minimalYAML = `
server:
  base_url: http://localhost:5000
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.BaseURL != "https://fleet.example.com" {
		t.Errorf("Server.BaseURL = %q, want %q (trailing slash trimmed)", cfg.Server.BaseURL, "https://fleet.example.com")
	}
	if cfg.Server.TimeoutSeconds != 30 {
		t.Errorf("Server.TimeoutSeconds = %d, want 30", cfg.Server.TimeoutSeconds)
	}
	if cfg.Username != "admin" {
		t.Errorf("Username = %q, want %q", cfg.Username, "admin")
	}
	if cfg.Stats.RefreshCron != "*/5 * * * *" {
		t.Errorf("Stats.RefreshCron = %q, want %q", cfg.Stats.RefreshCron, "*/5 * * * *")
	}
}

func TestParse_MinimalConfig_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.TimeoutSeconds != 15 {
		t.Errorf("Server.TimeoutSeconds = %d, want 15 (default)", cfg.Server.TimeoutSeconds)
	}
	if cfg.Stats.RefreshCron != "* * * * *" {
		t.Errorf("Stats.RefreshCron = %q, want %q (default)", cfg.Stats.RefreshCron, "* * * * *")
	}
	if cfg.Username != "" {
		t.Errorf("Username = %q, want empty", cfg.Username)
	}
}

func TestParse_MissingBaseURL(t *testing.T) {
	_, err := Parse([]byte("username: admin\n"))
	if err == nil {
		t.Fatal("expected error for missing base_url")
	}
	if !strings.Contains(err.Error(), "server.base_url is required") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "server.base_url is required")
	}
}

func TestParse_RelativeBaseURL(t *testing.T) {
	yaml := `
server:
  base_url: fleet.example.com
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("expected error for relative base_url")
	}
	if !strings.Contains(err.Error(), "not an absolute URL") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "not an absolute URL")
	}
}

func TestParse_NegativeTimeout(t *testing.T) {
	yaml := `
server:
  base_url: http://localhost:5000
  timeout_seconds: -1
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("expected error for negative timeout")
	}
	if !strings.Contains(err.Error(), "timeout_seconds must not be negative") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "timeout_seconds must not be negative")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte(":::invalid"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "config: parse:") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "config: parse:")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fleet.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "http://localhost:5000")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/fleet.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "config: read") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "config: read")
	}
}

// --- Fixture-based tests using testdata/ files ---

func TestLoad_FullFixture(t *testing.T) {
	cfg, err := Load("testdata/valid_full.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "https://fleet.example.com" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "https://fleet.example.com")
	}
	if cfg.Username != "admin" {
		t.Errorf("Username = %q, want %q", cfg.Username, "admin")
	}
}

func TestLoad_MinimalFixture(t *testing.T) {
	cfg, err := Load("testdata/valid_minimal.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.TimeoutSeconds != 15 {
		t.Errorf("Server.TimeoutSeconds = %d, want default 15", cfg.Server.TimeoutSeconds)
	}
}

func TestLoad_MissingBaseURLFixture(t *testing.T) {
	_, err := Load("testdata/missing_base_url.yaml")
	if err == nil {
		t.Fatal("expected error for missing base_url")
	}
	if !strings.Contains(err.Error(), "server.base_url is required") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "server.base_url is required")
	}
}

func TestLoad_InvalidYAMLFixture(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "config: parse:") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "config: parse:")
	}
}
