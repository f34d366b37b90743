package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---
// The catalog is fixed: six tools, constructed once at startup.

func searchBookByTitleTool() mcp.Tool {
	return mcp.NewTool("search_book_by_title",
		mcp.WithDescription("Search Open Library for books matching a title. Returns a JSON array of matches with title, authors, first publish year, work key, edition count, and a cover URL when one exists."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Book title to search for")),
	)
}

func searchAuthorsByNameTool() mcp.Tool {
	return mcp.NewTool("search_authors_by_name",
		mcp.WithDescription("Search Open Library for authors matching a name. Returns a JSON array of matches with key, name, alternate names, birth date, top work, and work count."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Author name to search for")),
	)
}

func getAuthorDetailTool() mcp.Tool {
	return mcp.NewTool("get_author_detail",
		mcp.WithDescription("Get the full Open Library record for an author by key. The bio field is flattened to plain text."),
		mcp.WithString("author_key", mcp.Required(), mcp.Description("Open Library author key in the format OL<number>A (e.g. OL23919A)")),
	)
}

func getAuthorPhotoURLTool() mcp.Tool {
	return mcp.NewTool("get_author_photo_url",
		mcp.WithDescription("Build the photo URL for an Open Library author. No request is made; the URL is returned directly."),
		mcp.WithString("author_key", mcp.Required(), mcp.Description("Open Library author key in the format OL<number>A (e.g. OL23919A)")),
	)
}

func getBookCoverURLTool() mcp.Tool {
	return mcp.NewTool("get_book_cover_url",
		mcp.WithDescription("Build the cover image URL for a book identifier. No request is made; the URL is returned directly."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Identifier kind: ISBN, OCLC, LCCN, OLID, or ID")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Identifier value (e.g. 0451526538)")),
		mcp.WithString("size", mcp.Description("Cover size: S, M, or L (default: L)")),
	)
}

func getBookByIdentifierTool() mcp.Tool {
	return mcp.NewTool("get_book_by_identifier",
		mcp.WithDescription("Look up a book by identifier via the Open Library volumes API. Returns a JSON object with title, authors, publishers, publish date, and related links."),
		mcp.WithString("id_type", mcp.Required(), mcp.Description("Identifier type: isbn, lccn, oclc, or olid")),
		mcp.WithString("id_value", mcp.Required(), mcp.Description("Identifier value (e.g. 9780451526533)")),
	)
}
