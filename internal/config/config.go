// Package config loads openlibrary-mcp configuration from TOML files
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/oltools/openlibrary-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server      ServerConfig         `toml:"server"`
	OpenLibrary OpenLibraryConfig    `toml:"openlibrary"`
	Logging     common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// OpenLibraryConfig contains upstream Open Library API settings.
type OpenLibraryConfig struct {
	BaseURL   string `toml:"base_url"`
	CoversURL string `toml:"covers_url"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the HTTP client timeout duration.
func (c *OpenLibraryConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing file is not an error; defaults and env overrides still apply.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies OPENLIBRARY_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("OPENLIBRARY_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if base := os.Getenv("OPENLIBRARY_BASE_URL"); base != "" {
		cfg.OpenLibrary.BaseURL = base
	}
	if covers := os.Getenv("OPENLIBRARY_COVERS_URL"); covers != "" {
		cfg.OpenLibrary.CoversURL = covers
	}
	if timeout := os.Getenv("OPENLIBRARY_TIMEOUT"); timeout != "" {
		cfg.OpenLibrary.Timeout = timeout
	}
	if level := os.Getenv("OPENLIBRARY_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
