package openlibrary

// SearchResponse is the shape returned by GET /search.json.
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Start    int         `json:"start"`
	Docs     []SearchDoc `json:"docs"`
}

// SearchDoc is one work record from a title search. Field presence varies
// per record; optional metadata is frequently absent.
type SearchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	EditionCount     int      `json:"edition_count"`
	CoverID          int64    `json:"cover_i"`
}

// AuthorSearchResponse is the shape returned by GET /search/authors.json.
type AuthorSearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []AuthorDoc `json:"docs"`
}

// AuthorDoc is one author record from an author search. Pointer fields
// stay nil when the upstream record omits them.
type AuthorDoc struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	BirthDate      *string  `json:"birth_date"`
	TopWork        *string  `json:"top_work"`
	WorkCount      *int     `json:"work_count"`
}

// VolumeRecord is one entry from the volumes brief API
// (GET /api/volumes/brief/{kind}/{value}.json). The upstream duplicates
// fields between the primary data block and the nested details block.
type VolumeRecord struct {
	Data    *VolumeData    `json:"data"`
	Details *VolumeDetails `json:"details"`
}

// VolumeData is the primary data block of a volume record.
type VolumeData struct {
	URL           string        `json:"url"`
	Key           string        `json:"key"`
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	Authors       []NamedEntity `json:"authors"`
	Publishers    []NamedEntity `json:"publishers"`
	PublishDate   string        `json:"publish_date"`
	NumberOfPages int           `json:"number_of_pages"`
	Cover         *CoverLinks   `json:"cover"`
}

// NamedEntity is a name/url pair as used for authors and publishers in
// the volume data block.
type NamedEntity struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CoverLinks holds the three cover image sizes of a volume record.
type CoverLinks struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// VolumeDetails is the secondary block of a volume record, wrapping the
// edition details plus preview metadata.
type VolumeDetails struct {
	Details    *EditionDetails `json:"details"`
	InfoURL    string          `json:"info_url"`
	Preview    string          `json:"preview"`
	PreviewURL string          `json:"preview_url"`
}

// EditionDetails mirrors the raw edition record nested inside the details
// block. Publishers are plain strings here, unlike the data block.
type EditionDetails struct {
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	Authors       []NamedEntity `json:"authors"`
	Publishers    []string      `json:"publishers"`
	PublishDate   string        `json:"publish_date"`
	NumberOfPages int           `json:"number_of_pages"`
}
