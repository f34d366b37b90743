package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/oltools/openlibrary-mcp/internal/common"
	"github.com/oltools/openlibrary-mcp/internal/openlibrary"
)

// toolEntry pairs a tool descriptor with its handler.
type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// Registry maps tool names to handlers and exposes the fixed tool catalog.
// It is constructed once at startup and read-only afterwards; concurrent
// calls share no mutable state.
type Registry struct {
	logger  *common.Logger
	order   []string
	entries map[string]toolEntry
}

// NewRegistry builds the catalog of the six Open Library tools around a
// configured client.
func NewRegistry(client *openlibrary.Client, coversURL string, logger *common.Logger) *Registry {
	h := NewHandlers(client, coversURL)

	r := &Registry{
		logger:  logger,
		entries: make(map[string]toolEntry),
	}
	r.register(searchBookByTitleTool(), h.SearchBookByTitle)
	r.register(searchAuthorsByNameTool(), h.SearchAuthorsByName)
	r.register(getAuthorDetailTool(), h.GetAuthorDetail)
	r.register(getAuthorPhotoURLTool(), h.GetAuthorPhotoURL)
	r.register(getBookCoverURLTool(), h.GetBookCoverURL)
	r.register(getBookByIdentifierTool(), h.GetBookByIdentifier)
	return r
}

func (r *Registry) register(tool mcp.Tool, handler server.ToolHandlerFunc) {
	r.order = append(r.order, tool.Name)
	r.entries[tool.Name] = toolEntry{tool: tool, handler: handler}
}

// ListTools returns the fixed tool catalog in registration order.
// Pure; identical on every call.
func (r *Registry) ListTools() []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.entries[name].tool)
	}
	return tools
}

// CallTool dispatches a named tool with raw arguments. An unrecognized
// name is a fault raised before any validation or network activity.
// Handler error payloads pass through unchanged.
func (r *Registry) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	return r.invoke(ctx, name, entry.handler, request)
}

// invoke runs a handler with a per-call correlation ID and duration log.
func (r *Registry) invoke(ctx context.Context, name string, handler server.ToolHandlerFunc, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := r.logger.WithCorrelationId(uuid.NewString())
	log.Debug().Str("tool", name).Msg("tool call")

	start := time.Now()
	result, err := handler(ctx, request)
	duration := time.Since(start)

	if err != nil {
		log.Warn().Str("tool", name).Dur("duration", duration).Str("error", err.Error()).Msg("tool call faulted")
		return nil, err
	}
	if result != nil && result.IsError {
		log.Warn().Str("tool", name).Dur("duration", duration).Msg("tool call returned error payload")
	} else {
		log.Debug().Str("tool", name).Dur("duration", duration).Msg("tool call completed")
	}
	return result, nil
}

// Attach registers every catalog tool on the mcp-go server, wiring each
// through the registry's invoke path.
func (r *Registry) Attach(s *server.MCPServer) {
	for _, name := range r.order {
		entry := r.entries[name]
		toolName := name
		handler := entry.handler
		s.AddTool(entry.tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return r.invoke(ctx, toolName, handler, request)
		})
	}
}
