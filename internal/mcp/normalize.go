package mcp

import (
	"sort"

	"github.com/oltools/openlibrary-mcp/internal/openlibrary"
)

// bookSearchCoverSize is the fixed suffix used for cover URLs built from
// title-search records.
const bookSearchCoverSize = "M"

// BookEntry is the normalized record returned for each title-search match.
// Absent upstream fields get concrete defaults: empty author list, null
// first publish year, zero edition count. The cover URL is omitted
// entirely when the record carries no cover id.
type BookEntry struct {
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Key              string   `json:"key"`
	EditionCount     int      `json:"edition_count"`
	CoverURL         string   `json:"cover_url,omitempty"`
}

// AuthorEntry is the normalized record returned for each author-search
// match. Unlike BookEntry, absent upstream fields are preserved as nulls
// rather than defaulted; the per-tool policies differ deliberately.
type AuthorEntry struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	BirthDate      *string  `json:"birth_date"`
	TopWork        *string  `json:"top_work"`
	WorkCount      *int     `json:"work_count"`
}

// bookEntries maps every title-search doc to a normalized book entry.
func bookEntries(docs []openlibrary.SearchDoc, coversURL string) []BookEntry {
	entries := make([]BookEntry, 0, len(docs))
	for _, doc := range docs {
		entry := BookEntry{
			Title:            doc.Title,
			Authors:          doc.AuthorName,
			FirstPublishYear: doc.FirstPublishYear,
			Key:              doc.Key,
			EditionCount:     doc.EditionCount,
		}
		if entry.Authors == nil {
			entry.Authors = []string{}
		}
		if doc.CoverID != 0 {
			entry.CoverURL = openlibrary.CoverIDURL(coversURL, doc.CoverID, bookSearchCoverSize)
		}
		entries = append(entries, entry)
	}
	return entries
}

// authorEntries maps every author-search doc to a normalized author entry.
func authorEntries(docs []openlibrary.AuthorDoc) []AuthorEntry {
	entries := make([]AuthorEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, AuthorEntry{
			Key:            doc.Key,
			Name:           doc.Name,
			AlternateNames: doc.AlternateNames,
			BirthDate:      doc.BirthDate,
			TopWork:        doc.TopWork,
			WorkCount:      doc.WorkCount,
		})
	}
	return entries
}

// flattenAuthorBio resolves the polymorphic bio field on a raw author
// record: upstream serves either a plain string or a {type, value} object,
// and the object form is flattened to its inner string in place.
func flattenAuthorBio(record map[string]any) {
	bio, ok := record["bio"]
	if !ok {
		return
	}
	obj, ok := bio.(map[string]any)
	if !ok {
		return
	}
	if value, ok := obj["value"].(string); ok {
		record["bio"] = value
	}
}

// firstVolumeRecord selects the first record of a volumes brief response.
// The map is keyed by dynamic record identifiers; the lexicographically
// smallest key is taken for determinism (upstream returns a single record
// per identifier in practice).
func firstVolumeRecord(records map[string]openlibrary.VolumeRecord) openlibrary.VolumeRecord {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return records[keys[0]]
}

// normalizeVolume reshapes a volume record into the output object. Fields
// are pulled from the primary data block first, falling back to the nested
// details block. Empty arrays and absent fields are stripped rather than
// serialized.
func normalizeVolume(record openlibrary.VolumeRecord) map[string]any {
	data := record.Data
	var details *openlibrary.EditionDetails
	if record.Details != nil {
		details = record.Details.Details
	}

	out := make(map[string]any)
	putString := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}

	var title, subtitle, publishDate, infoURL string
	var pages int
	if data != nil {
		title = data.Title
		subtitle = data.Subtitle
		publishDate = data.PublishDate
		infoURL = data.URL
		pages = data.NumberOfPages
	}
	if details != nil {
		if title == "" {
			title = details.Title
		}
		if subtitle == "" {
			subtitle = details.Subtitle
		}
		if publishDate == "" {
			publishDate = details.PublishDate
		}
		if pages == 0 {
			pages = details.NumberOfPages
		}
	}
	if record.Details != nil && infoURL == "" {
		infoURL = record.Details.InfoURL
	}

	putString("title", title)
	putString("subtitle", subtitle)
	putString("publish_date", publishDate)
	putString("info_url", infoURL)
	if pages > 0 {
		out["number_of_pages"] = pages
	}

	authors := volumeAuthors(data, details)
	if len(authors) > 0 {
		out["authors"] = authors
	}
	publishers := volumePublishers(data, details)
	if len(publishers) > 0 {
		out["publishers"] = publishers
	}

	if data != nil && data.Cover != nil {
		putString("cover_url", data.Cover.Medium)
	}
	if record.Details != nil {
		putString("preview_url", record.Details.PreviewURL)
	}

	return out
}

// volumeAuthors extracts author names, preferring the data block.
func volumeAuthors(data *openlibrary.VolumeData, details *openlibrary.EditionDetails) []string {
	var source []openlibrary.NamedEntity
	if data != nil && len(data.Authors) > 0 {
		source = data.Authors
	} else if details != nil {
		source = details.Authors
	}
	names := make([]string, 0, len(source))
	for _, a := range source {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

// volumePublishers extracts publisher names; the data block carries
// name objects while the details block carries plain strings.
func volumePublishers(data *openlibrary.VolumeData, details *openlibrary.EditionDetails) []string {
	if data != nil && len(data.Publishers) > 0 {
		names := make([]string, 0, len(data.Publishers))
		for _, p := range data.Publishers {
			if p.Name != "" {
				names = append(names, p.Name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	if details != nil && len(details.Publishers) > 0 {
		return details.Publishers
	}
	return nil
}
