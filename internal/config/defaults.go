package config

import "github.com/oltools/openlibrary-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
// The defaults are complete: the server runs with no config file at all.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "openlibrary-mcp",
			Port: "4270",
		},
		OpenLibrary: OpenLibraryConfig{
			BaseURL:   "https://openlibrary.org",
			CoversURL: "https://covers.openlibrary.org",
			Timeout:   "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/openlibrary-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
