package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/oltools/openlibrary-mcp/internal/common"
	"github.com/oltools/openlibrary-mcp/internal/config"
	olmcp "github.com/oltools/openlibrary-mcp/internal/mcp"
	"github.com/oltools/openlibrary-mcp/internal/openlibrary"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "openlibrary-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := openlibrary.NewClient(cfg.OpenLibrary.BaseURL, cfg.OpenLibrary.GetTimeout(), logger)
	registry := olmcp.NewRegistry(client, cfg.OpenLibrary.CoversURL, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)
	registry.Attach(mcpServer)

	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("base_url", client.BaseURL()).
		Int("tools", len(registry.ListTools())).
		Msg("openlibrary-mcp initialized")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
