// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/modeldeck-tui/internal/logging"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Registry.URL == "" {
		t.Error("Default registry URL should not be empty")
	}
	if cfg.Explorer.URL == "" {
		t.Error("Default explorer URL should not be empty")
	}
	if cfg.Registry.TimeoutSecs <= 0 {
		t.Error("Default registry timeout should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// =============================================================================
// LOAD
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1.0.0"

[registry]
url = "http://registry.local:9000"
timeout_secs = 30

[explorer]
url = "https://explorer.example.com"

[ui]
theme = "light"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Registry.URL != "http://registry.local:9000" {
		t.Errorf("Registry URL = %q", cfg.Registry.URL)
	}
	if cfg.Registry.TimeoutSecs != 30 {
		t.Errorf("Registry timeout = %d, want 30", cfg.Registry.TimeoutSecs)
	}
	if cfg.Explorer.URL != "https://explorer.example.com" {
		t.Errorf("Explorer URL = %q", cfg.Explorer.URL)
	}
	// Missing values fall back to defaults
	if cfg.Explorer.TimeoutSecs != Default().Explorer.TimeoutSecs {
		t.Errorf("Explorer timeout = %d, want default", cfg.Explorer.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "registry": {"url": "http://127.0.0.1:7000", "timeout_secs": 15},
  "explorer": {"url": "http://127.0.0.1:7001"}
}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Registry.URL != "http://127.0.0.1:7000" {
		t.Errorf("Registry URL = %q", cfg.Registry.URL)
	}
	if cfg.Registry.TimeoutSecs != 15 {
		t.Errorf("Registry timeout = %d, want 15", cfg.Registry.TimeoutSecs)
	}
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MODELDECK_REGISTRY_URL", "http://env-registry:1234")
	t.Setenv("MODELDECK_EXPLORER_URL", "http://env-explorer:5678")
	t.Setenv("MODELDECK_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Registry.URL != "http://env-registry:1234" {
		t.Errorf("Registry URL = %q", cfg.Registry.URL)
	}
	if cfg.Explorer.URL != "http://env-explorer:5678" {
		t.Errorf("Explorer URL = %q", cfg.Explorer.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %q", cfg.Log.Level)
	}
}

func TestApplyEnvOverrides_EmptyIgnored(t *testing.T) {
	t.Setenv("MODELDECK_REGISTRY_URL", "  ")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Registry.URL != Default().Registry.URL {
		t.Errorf("Blank env var should not override, got %q", cfg.Registry.URL)
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{
			"bad registry scheme",
			func(c *Config) { c.Registry.URL = "ftp://example.com" },
			"registry.url",
		},
		{
			"registry missing host",
			func(c *Config) { c.Registry.URL = "http://" },
			"registry.url",
		},
		{
			"bad explorer url",
			func(c *Config) { c.Explorer.URL = "://nope" },
			"explorer.url",
		},
		{
			"bad theme",
			func(c *Config) { c.UI.Theme = "neon" },
			"ui.theme",
		},
		{
			"bad log level",
			func(c *Config) { c.Log.Level = "verbose" },
			"log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// =============================================================================
// SAVE / ROUND-TRIP
// =============================================================================

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Registry.URL = "http://saved:9999"
	cfg.UI.Theme = "light"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Config file permissions = %o, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Registry.URL != "http://saved:9999" {
		t.Errorf("Registry URL = %q after round trip", loaded.Registry.URL)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("Theme = %q after round trip", loaded.UI.Theme)
	}
}

// =============================================================================
// WATCHER
// =============================================================================

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	}, logging.Discard())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	updated := Default()
	updated.Registry.URL = "http://changed:4321"
	if err := SaveTOML(updated, path); err != nil {
		t.Fatalf("SaveTOML (update) failed: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Registry.URL != "http://changed:4321" {
			t.Errorf("Reloaded registry URL = %q", cfg.Registry.URL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) {
		reloaded <- c
	}, logging.Discard())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("broken ["), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("Invalid config should not trigger reload, got %+v", cfg)
	case <-time.After(1 * time.Second):
		// expected: no reload
	}
}
