package export

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Front matter context shapes. Field order here is the key order in the
// emitted TOML, so it never changes casually.

type trackFrontMatter struct {
	Title         string `toml:"title"`
	Template      string `toml:"template"`
	Artist        string `toml:"artist"`
	Album         string `toml:"album"`
	Year          int    `toml:"year"`
	Format        string `toml:"format"`
	Bitrate       string `toml:"bitrate"`
	Length        string `toml:"length"`
	Genre         string `toml:"genre"`
	URL           string `toml:"url"`
	SearchContent string `toml:"search_content"`
}

type albumSummary struct {
	Title  string `toml:"title"`
	Year   int    `toml:"year"`
	Tracks int    `toml:"tracks"`
}

type artistFrontMatter struct {
	Title    string         `toml:"title"`
	Template string         `toml:"template"`
	Artist   string         `toml:"artist"`
	Albums   []albumSummary `toml:"albums"`
}

type trackInAlbum struct {
	Title  string `toml:"title"`
	Length string `toml:"length"`
	URL    string `toml:"url"`
}

type albumFrontMatter struct {
	Title      string         `toml:"title"`
	Template   string         `toml:"template"`
	Album      string         `toml:"album"`
	Artist     string         `toml:"artist"`
	Year       int            `toml:"year"`
	Genre      string         `toml:"genre"`
	TrackTotal int            `toml:"tracktotal"`
	Tracks     []trackInAlbum `toml:"tracks"`
}

type artistLink struct {
	Name string `toml:"name"`
	Slug string `toml:"slug"`
}

type indexFrontMatter struct {
	Title       string       `toml:"title"`
	SortBy      string       `toml:"sort_by"`
	Template    string       `toml:"template"`
	ArtistCount int          `toml:"artist_count"`
	AlbumCount  int          `toml:"album_count"`
	TrackCount  int          `toml:"track_count"`
	Artists     []artistLink `toml:"artists"`
}

type sectionFrontMatter struct {
	Title    string `toml:"title"`
	SortBy   string `toml:"sort_by"`
	Template string `toml:"template"`
}

type tokenEntry struct {
	Token string   `toml:"token"`
	URLs  []string `toml:"urls"`
}

type searchIndexFile struct {
	TokenCount int          `toml:"token_count"`
	Tokens     []tokenEntry `toml:"tokens"`
}

// renderPage produces a Zola-style document: TOML front matter between
// "+++" lines, then the body.
func renderPage(front any, body string) ([]byte, error) {
	matter, err := toml.Marshal(front)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(matter) + len(body) + 16)
	buf.WriteString("+++\n")
	buf.Write(matter)
	buf.WriteString("+++\n")
	if body != "" {
		buf.WriteString(body)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
