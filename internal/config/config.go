// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Upstream UpstreamConfig `koanf:"upstream"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// apiKeyPlaceholder is the value shipped in the example credential file.
// It is rejected at startup so a copied template never reaches the upstream.
const apiKeyPlaceholder = "YOUR_CLASH_ROYALE_API_KEY_HERE"

// UpstreamConfig holds the Clash Royale API connection settings.
//
// The credential can be supplied directly via CLASH_API_KEY or read from the
// file named by APIKeyFile; the environment variable wins when both are set.
//
// Environment Variables:
//   - CLASH_API_KEY: Bearer token from https://developer.clashroyale.com
//   - CLASH_API_KEY_FILE: Path to a file containing the token (default: api_key.txt)
//   - CLASH_API_BASE_URL: API base URL (default: https://api.clashroyale.com/v1)
//   - CLASH_API_TIMEOUT: Per-request timeout (default: 30s)
//   - CLASH_API_MAX_RETRIES: Retry budget; loaded but not yet applied, the
//     client currently performs a single attempt per operation
type UpstreamConfig struct {
	BaseURL    string        `koanf:"base_url"`
	APIKey     string        `koanf:"api_key"`
	APIKeyFile string        `koanf:"api_key_file"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxRetries int           `koanf:"max_retries"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds the inbound request policy. CORSOrigins defaults to
// the local frontend dev servers (Vite on 5173, CRA on 3000).
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ResolveAPIKey fills Upstream.APIKey from the credential file when the
// environment did not provide one. The file contents are trimmed of
// surrounding whitespace so a trailing newline does not corrupt the header.
func (c *Config) ResolveAPIKey() error {
	if c.Upstream.APIKey != "" {
		return nil
	}
	if c.Upstream.APIKeyFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.Upstream.APIKeyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Validate reports the missing credential with guidance
		}
		return fmt.Errorf("failed to read API key file %s: %w", c.Upstream.APIKeyFile, err)
	}
	c.Upstream.APIKey = strings.TrimSpace(string(data))
	return nil
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateUpstream(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateUpstream() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("CLASH_API_KEY is required: set the environment variable or place your key in %s", c.Upstream.APIKeyFile)
	}
	if c.Upstream.APIKey == apiKeyPlaceholder {
		return fmt.Errorf("CLASH_API_KEY still holds the placeholder value: replace it with a real key from https://developer.clashroyale.com")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("CLASH_API_BASE_URL must not be empty")
	}
	parsed, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("CLASH_API_BASE_URL is invalid: %q must be an http or https URL", c.Upstream.BaseURL)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("CLASH_API_TIMEOUT must be positive, got %s", c.Upstream.Timeout)
	}
	if c.Upstream.MaxRetries < 0 {
		return fmt.Errorf("CLASH_API_MAX_RETRIES must not be negative, got %d", c.Upstream.MaxRetries)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
