package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if cfg.Server.Name != "openlibrary-mcp" {
		t.Errorf("Expected default server name, got %q", cfg.Server.Name)
	}
	if cfg.Server.Port != "4270" {
		t.Errorf("Expected default port 4270, got %q", cfg.Server.Port)
	}
	if cfg.OpenLibrary.BaseURL != "https://openlibrary.org" {
		t.Errorf("Expected default base URL, got %q", cfg.OpenLibrary.BaseURL)
	}
	if cfg.OpenLibrary.CoversURL != "https://covers.openlibrary.org" {
		t.Errorf("Expected default covers URL, got %q", cfg.OpenLibrary.CoversURL)
	}
	if cfg.OpenLibrary.GetTimeout() != 30*time.Second {
		t.Errorf("Expected default 30s timeout, got %v", cfg.OpenLibrary.GetTimeout())
	}
}

func TestLoadFromFile_TOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "9090"

[openlibrary]
base_url = "http://localhost:8080"
timeout = "5s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090 from file, got %q", cfg.Server.Port)
	}
	if cfg.OpenLibrary.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected base URL from file, got %q", cfg.OpenLibrary.BaseURL)
	}
	if cfg.OpenLibrary.GetTimeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout from file, got %v", cfg.OpenLibrary.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug from file, got %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults
	if cfg.Server.Name != "openlibrary-mcp" {
		t.Errorf("Expected default server name, got %q", cfg.Server.Name)
	}
	if cfg.OpenLibrary.CoversURL != "https://covers.openlibrary.org" {
		t.Errorf("Expected default covers URL, got %q", cfg.OpenLibrary.CoversURL)
	}
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("OPENLIBRARY_MCP_PORT", "7070")
	t.Setenv("OPENLIBRARY_BASE_URL", "http://upstream.test")
	t.Setenv("OPENLIBRARY_LOG_LEVEL", "warn")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Expected env port 7070 to win over file, got %q", cfg.Server.Port)
	}
	if cfg.OpenLibrary.BaseURL != "http://upstream.test" {
		t.Errorf("Expected env base URL, got %q", cfg.OpenLibrary.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env log level warn, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("Expected error for malformed TOML")
	}
}

func TestGetTimeout_InvalidFallsBack(t *testing.T) {
	c := OpenLibraryConfig{Timeout: "soon"}
	if c.GetTimeout() != 30*time.Second {
		t.Errorf("Expected 30s fallback, got %v", c.GetTimeout())
	}
}
