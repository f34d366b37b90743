package openlibrary

import (
	"fmt"
	"strings"
)

// Cover and photo URLs are deterministic string templates: no request is
// made and construction cannot fail once arguments are validated.

// BookCoverURL builds a cover image URL for the given identifier key
// (isbn, oclc, lccn, olid or id), value, and size suffix (S, M or L).
func BookCoverURL(coversURL, key, value, size string) string {
	if coversURL == "" {
		coversURL = DefaultCoversURL
	}
	return fmt.Sprintf("%s/b/%s/%s-%s.jpg", coversURL, strings.ToLower(key), value, size)
}

// CoverIDURL builds a cover image URL from a numeric cover id, as carried
// on title-search records.
func CoverIDURL(coversURL string, coverID int64, size string) string {
	if coversURL == "" {
		coversURL = DefaultCoversURL
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", coversURL, coverID, size)
}

// AuthorPhotoURL builds an author photo URL for an OLID author key.
// The photo endpoint always uses the large size.
func AuthorPhotoURL(coversURL, authorKey string) string {
	if coversURL == "" {
		coversURL = DefaultCoversURL
	}
	return fmt.Sprintf("%s/a/olid/%s-L.jpg", coversURL, authorKey)
}
