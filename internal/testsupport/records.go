package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// RecordFields holds the front matter values for a generated test record.
// Zero-valued fields are filled with working defaults so tests only spell
// out what they care about.
type RecordFields struct {
	Title   string
	Artist  string
	Album   string
	Year    int
	Format  string
	Bitrate string
	Length  string
	Genre   string
	Extra   string // raw TOML appended to the front matter
	Body    string
}

// WriteRecord writes one record file into dir and returns its name.
func WriteRecord(t testing.TB, dir, name string, fields RecordFields) string {
	t.Helper()

	if fields.Artist == "" {
		fields.Artist = "Vienna Teng"
	}
	if fields.Album == "" {
		fields.Album = "Dreaming Through the Noise"
	}
	if fields.Year == 0 {
		fields.Year = 2006
	}
	if fields.Format == "" {
		fields.Format = "FLAC"
	}
	if fields.Bitrate == "" {
		fields.Bitrate = "746kbps"
	}
	if fields.Length == "" {
		fields.Length = "6:15"
	}
	if fields.Genre == "" {
		fields.Genre = "Folk"
	}

	content := fmt.Sprintf(`+++
title = %q
artist = %q
album = %q
year = %d
format = %q
bitrate = %q
length = %q
genre = %q
`, fields.Title, fields.Artist, fields.Album, fields.Year,
		fields.Format, fields.Bitrate, fields.Length, fields.Genre)
	if fields.Extra != "" {
		content += fields.Extra + "\n"
	}
	content += "+++\n"
	if fields.Body != "" {
		content += fields.Body + "\n"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create record dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write record %s: %v", name, err)
	}
	return name
}
