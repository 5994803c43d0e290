package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base_url, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if len(cfg.Endpoints) != len(DefaultEndpoints) {
		t.Errorf("expected %d endpoints, got %d", len(DefaultEndpoints), len(cfg.Endpoints))
	}
	if cfg.Endpoints[EndpointUser] != "/api/user" {
		t.Errorf("user endpoint = %q", cfg.Endpoints[EndpointUser])
	}

	// DefaultConfig must not share the package-level map.
	cfg.Endpoints[EndpointHealth] = "/changed"
	if DefaultEndpoints[EndpointHealth] != "/health" {
		t.Error("DefaultConfig leaked DefaultEndpoints")
	}
}

func TestEndpointOrderCoversDefaults(t *testing.T) {
	if len(EndpointOrder) != len(DefaultEndpoints) {
		t.Fatalf("EndpointOrder has %d names, DefaultEndpoints %d", len(EndpointOrder), len(DefaultEndpoints))
	}
	for _, name := range EndpointOrder {
		if _, ok := DefaultEndpoints[name]; !ok {
			t.Errorf("EndpointOrder name %q has no default path", name)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.opspanel.yml")

	original := DefaultConfig()
	original.BaseURL = "https://api.example.com"
	original.Timeout = 5 * time.Second
	original.LogLevel = LogDebug
	original.NoHistory = true
	original.Endpoints[EndpointUsers] = "/v2/users"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Timeout != original.Timeout {
		t.Errorf("timeout: got %v, want %v", loaded.Timeout, original.Timeout)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, original.LogLevel)
	}
	if !loaded.NoHistory {
		t.Error("no_history: expected true")
	}
	if loaded.Endpoints[EndpointUsers] != "/v2/users" {
		t.Errorf("users endpoint: got %q", loaded.Endpoints[EndpointUsers])
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("expected default base_url, got %q", cfg.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("OPSPANEL_BASE_URL", "http://10.0.0.5:9000")
	t.Setenv("OPSPANEL_ENDPOINTS__HEALTH", "/healthz")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BaseURL != "http://10.0.0.5:9000" {
		t.Errorf("env override failed: got %q", loaded.BaseURL)
	}
	if loaded.Endpoints[EndpointHealth] != "/healthz" {
		t.Errorf("nested env override failed: got %q", loaded.Endpoints[EndpointHealth])
	}
	if loaded.Endpoints[EndpointItems] != "/items" {
		t.Errorf("untouched endpoint lost its default: got %q", loaded.Endpoints[EndpointItems])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty base url", func(c *Config) { c.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.BaseURL = "/api" }, true},
		{"ftp base url", func(c *Config) { c.BaseURL = "ftp://host" }, true},
		{"path without slash", func(c *Config) { c.Endpoints[EndpointUser] = "api/user" }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://localhost:8080/"

	got, err := cfg.URL(EndpointUsers)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if got != "http://localhost:8080/api/users" {
		t.Errorf("URL(users) = %q", got)
	}

	if _, err := cfg.URL("nope"); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("expected ErrUnknownEndpoint, got %v", err)
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validateBaseURL("http://localhost:8080"); err != nil {
		t.Errorf("valid url rejected: %v", err)
	}
	if err := validateBaseURL("localhost"); err == nil {
		t.Error("expected error for url without scheme")
	}
	if err := validateTimeout("10s"); err != nil {
		t.Errorf("valid timeout rejected: %v", err)
	}
	if err := validateTimeout("soon"); err == nil {
		t.Error("expected error for unparseable timeout")
	}
	if err := validateTimeout("-1s"); err == nil {
		t.Error("expected error for negative timeout")
	}
}
