// Package derive computes the two derived Track fields: the canonical URL
// and the denormalized search content. Both are pure functions of the
// canonical fields. Stored copies in the source record are treated as
// advisory; Apply recomputes them, reports any divergence, and always keeps
// the recomputed value.
package derive

import (
	"errors"
	"fmt"

	"liner/internal/record"
	"liner/internal/textutil"
	"liner/internal/track"
)

// urlPrefix is the canonical path prefix for track pages.
const urlPrefix = "/tracks/"

// Warning reports a stored derived field that disagreed with recomputation.
// Non-fatal: the recomputed value wins, the incident is surfaced in the
// build report.
type Warning struct {
	Record     string
	Field      string
	Stored     string
	Recomputed string
}

func (w Warning) String() string {
	return fmt.Sprintf("record %s: stored %s %q disagrees with recomputed %q",
		w.Record, w.Field, w.Stored, w.Recomputed)
}

// URL derives the canonical track URL from a title. A title with no
// alphanumeric characters cannot be slugged and is a malformed record.
func URL(title string) (string, error) {
	slug := textutil.Slugify(title)
	if slug == "" {
		return "", &record.MalformedError{Record: title, Field: "title", Reason: record.ReasonUnslugerizable}
	}
	return urlPrefix + slug, nil
}

// SearchContent concatenates title, artist, album, and genre in that fixed
// order with single spaces.
func SearchContent(t *track.Track) string {
	return t.Title + " " + t.Artist + " " + t.Album + " " + t.Genre
}

// Apply recomputes both derived fields on a freshly parsed track, compares
// them against any stored advisory values, and overwrites the track with the
// recomputed values. The returned warnings describe stored values that had
// drifted. Apply must run before the track enters the catalog; tracks are
// immutable afterwards.
func Apply(name string, t *track.Track) ([]Warning, error) {
	url, err := URL(t.Title)
	if err != nil {
		var malformed *record.MalformedError
		if errors.As(err, &malformed) {
			malformed.Record = name
		}
		return nil, err
	}
	content := SearchContent(t)

	var warnings []Warning
	if t.URL != "" && t.URL != url {
		warnings = append(warnings, Warning{Record: name, Field: "url", Stored: t.URL, Recomputed: url})
	}
	if t.SearchContent != "" && t.SearchContent != content {
		warnings = append(warnings, Warning{Record: name, Field: "search_content", Stored: t.SearchContent, Recomputed: content})
	}

	t.URL = url
	t.SearchContent = content
	return warnings, nil
}
