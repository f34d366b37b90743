package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oltools/openlibrary-mcp/internal/openlibrary"
)

// --- Result helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult serializes v as indented JSON and wraps it in a text result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error serializing result: %v", err))
	}
	return textResult(string(data))
}

// upstreamError classifies a remote failure into an error payload:
// a non-2xx response reports the HTTP status text, a transport failure
// reports the underlying error message. Both are returned as ordinary
// payloads flagged isError, never as protocol faults.
func upstreamError(err error) *mcp.CallToolResult {
	var se *openlibrary.StatusError
	if errors.As(err, &se) {
		return errorResult("Open Library API error: " + se.StatusText())
	}
	return errorResult("Open Library request failed: " + err.Error())
}

// Handlers holds the shared Open Library client used by the remote-backed
// tools and the covers host used by the URL-construction tools. Handlers
// are stateless; concurrent calls are independent.
type Handlers struct {
	client    *openlibrary.Client
	coversURL string
}

// NewHandlers creates the tool handlers around a configured client.
func NewHandlers(client *openlibrary.Client, coversURL string) *Handlers {
	if coversURL == "" {
		coversURL = openlibrary.DefaultCoversURL
	}
	return &Handlers{client: client, coversURL: coversURL}
}

// SearchBookByTitle handles search_book_by_title: one GET to the search
// endpoint, mapping every matching record to a normalized book entry.
func (h *Handlers) SearchBookByTitle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(searchBookByTitleSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	title := args["title"]

	body, err := h.client.Get(ctx, "/search.json?title="+url.QueryEscape(title))
	if err != nil {
		return upstreamError(err), nil
	}

	var resp openlibrary.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
	}

	if len(resp.Docs) == 0 {
		return textResult(fmt.Sprintf("No books found matching title: %q", title)), nil
	}

	return jsonResult(bookEntries(resp.Docs, h.coversURL)), nil
}

// SearchAuthorsByName handles search_authors_by_name. Absent upstream
// fields are preserved as nulls in the output, not defaulted.
func (h *Handlers) SearchAuthorsByName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(searchAuthorsByNameSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	name := args["name"]

	body, err := h.client.Get(ctx, "/search/authors.json?q="+url.QueryEscape(name))
	if err != nil {
		return upstreamError(err), nil
	}

	var resp openlibrary.AuthorSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
	}

	if len(resp.Docs) == 0 {
		return textResult(fmt.Sprintf("No authors found matching name: %q", name)), nil
	}

	return jsonResult(authorEntries(resp.Docs)), nil
}

// GetAuthorDetail handles get_author_detail: fetches a single author
// record by key, flattening the polymorphic bio field. A 404 or an empty
// record yields the dedicated not-found message.
func (h *Handlers) GetAuthorDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(getAuthorDetailSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	key := args["author_key"]

	body, err := h.client.Get(ctx, "/authors/"+url.PathEscape(key)+".json")
	if err != nil {
		if openlibrary.IsNotFound(err) {
			return errorResult(fmt.Sprintf("Author with key %q not found.", key)), nil
		}
		return upstreamError(err), nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errorResult(fmt.Sprintf("Author with key %q not found.", key)), nil
	}

	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
	}
	if len(record) == 0 {
		return errorResult(fmt.Sprintf("Author with key %q not found.", key)), nil
	}

	flattenAuthorBio(record)

	return jsonResult(record), nil
}

// GetBookByIdentifier handles get_book_by_identifier: one GET to the
// volumes brief endpoint, selecting the first record and normalizing it
// with data-block precedence. An empty map or 404 is an informational
// text result, not an error.
func (h *Handlers) GetBookByIdentifier(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(getBookByIdentifierSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	idType := args["id_type"]
	idValue := args["id_value"]

	path := fmt.Sprintf("/api/volumes/brief/%s/%s.json", idType, url.PathEscape(idValue))
	body, err := h.client.Get(ctx, path)
	if err != nil {
		if openlibrary.IsNotFound(err) {
			return textResult(fmt.Sprintf("No book found for %s: %s", idType, idValue)), nil
		}
		return upstreamError(err), nil
	}

	var records map[string]openlibrary.VolumeRecord
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &records); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}
	}

	if len(records) == 0 {
		return textResult(fmt.Sprintf("No book found for %s: %s", idType, idValue)), nil
	}

	record := firstVolumeRecord(records)
	return jsonResult(normalizeVolume(record)), nil
}

// GetAuthorPhotoURL handles get_author_photo_url. Pure URL construction;
// cannot fail after validation succeeds.
func (h *Handlers) GetAuthorPhotoURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(getAuthorPhotoURLSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	return textResult(openlibrary.AuthorPhotoURL(h.coversURL, args["author_key"])), nil
}

// GetBookCoverURL handles get_book_cover_url. Pure URL construction;
// the size defaults to L when omitted.
func (h *Handlers) GetBookCoverURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := validateArgs(getBookCoverURLSchema, request.GetArguments())
	if err != nil {
		return nil, err
	}
	return textResult(openlibrary.BookCoverURL(h.coversURL, args["key"], args["value"], args["size"])), nil
}
