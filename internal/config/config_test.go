// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Upstream.APIKey = "real-key"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Upstream.BaseURL != "https://api.clashroyale.com/v1" {
		t.Errorf("unexpected default base URL: %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.APIKeyFile != "api_key.txt" {
		t.Errorf("unexpected default key file: %q", cfg.Upstream.APIKeyFile)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.Upstream.Timeout)
	}
	if cfg.Server.Port != 5050 {
		t.Errorf("unexpected default port: %d", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 4 {
		t.Errorf("expected 4 default CORS origins, got %d", len(cfg.Security.CORSOrigins))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing key", func(c *Config) { c.Upstream.APIKey = "" }, "CLASH_API_KEY is required"},
		{"placeholder key", func(c *Config) { c.Upstream.APIKey = apiKeyPlaceholder }, "placeholder"},
		{"empty base URL", func(c *Config) { c.Upstream.BaseURL = "" }, "CLASH_API_BASE_URL"},
		{"non-http base URL", func(c *Config) { c.Upstream.BaseURL = "ftp://api.example.com" }, "http or https"},
		{"zero timeout", func(c *Config) { c.Upstream.Timeout = 0 }, "CLASH_API_TIMEOUT"},
		{"negative retries", func(c *Config) { c.Upstream.MaxRetries = -1 }, "CLASH_API_MAX_RETRIES"},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestResolveAPIKeyFromFile(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "api_key.txt")
	if err := os.WriteFile(keyFile, []byte("  file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Upstream.APIKeyFile = keyFile
	if err := cfg.ResolveAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.APIKey != "file-key" {
		t.Errorf("expected trimmed file key, got %q", cfg.Upstream.APIKey)
	}
}

func TestResolveAPIKeyEnvWins(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "api_key.txt")
	if err := os.WriteFile(keyFile, []byte("file-key"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Upstream.APIKey = "env-key"
	cfg.Upstream.APIKeyFile = keyFile
	if err := cfg.ResolveAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.APIKey != "env-key" {
		t.Errorf("directly set key should win, got %q", cfg.Upstream.APIKey)
	}
}

func TestResolveAPIKeyMissingFileIsDeferred(t *testing.T) {
	cfg := defaultConfig()
	cfg.Upstream.APIKeyFile = filepath.Join(t.TempDir(), "nope.txt")
	if err := cfg.ResolveAPIKey(); err != nil {
		t.Fatalf("missing key file should defer to validation, got %v", err)
	}
	if cfg.Upstream.APIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.Upstream.APIKey)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CLASH_API_KEY", "upstream.api_key"},
		{"CLASH_API_BASE_URL", "upstream.base_url"},
		{"CLASH_API_TIMEOUT", "upstream.timeout"},
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadLayersEnvOverFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yamlContent := `
upstream:
  api_key: yaml-key
server:
  port: 8080
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("CLASH_API_KEY", "env-key")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Upstream.APIKey != "env-key" {
		t.Errorf("env should override file, got %q", cfg.Upstream.APIKey)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("file should override default port, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("untouched defaults should survive, got %s", cfg.Upstream.Timeout)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("expected %d CORS origins, got %v", len(want), cfg.Security.CORSOrigins)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("CORS origin %d: expected %q, got %q", i, origin, cfg.Security.CORSOrigins[i])
		}
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("CLASH_API_KEY", "env-key")
	t.Setenv("HTTP_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation failure for out-of-range port")
	}
}

func TestListenAddr(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.ListenAddr(); got != "0.0.0.0:5050" {
		t.Errorf("expected 0.0.0.0:5050, got %q", got)
	}
}
