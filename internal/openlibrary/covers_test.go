package openlibrary

import "testing"

func TestBookCoverURL(t *testing.T) {
	cases := []struct {
		key, value, size string
		want             string
	}{
		{"isbn", "0451526538", "L", "https://covers.openlibrary.org/b/isbn/0451526538-L.jpg"},
		{"ISBN", "0451526538", "S", "https://covers.openlibrary.org/b/isbn/0451526538-S.jpg"},
		{"olid", "OL7440033M", "M", "https://covers.openlibrary.org/b/olid/OL7440033M-M.jpg"},
		{"ID", "8406786", "L", "https://covers.openlibrary.org/b/id/8406786-L.jpg"},
	}

	for _, tc := range cases {
		got := BookCoverURL(DefaultCoversURL, tc.key, tc.value, tc.size)
		if got != tc.want {
			t.Errorf("BookCoverURL(%q, %q, %q): expected %q, got %q", tc.key, tc.value, tc.size, tc.want, got)
		}
	}
}

func TestCoverIDURL(t *testing.T) {
	got := CoverIDURL(DefaultCoversURL, 8406786, "M")
	want := "https://covers.openlibrary.org/b/id/8406786-M.jpg"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAuthorPhotoURL(t *testing.T) {
	got := AuthorPhotoURL(DefaultCoversURL, "OL23919A")
	want := "https://covers.openlibrary.org/a/olid/OL23919A-L.jpg"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
