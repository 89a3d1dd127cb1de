package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"liner/internal/catalog"
	"liner/internal/derive"
	"liner/internal/library"
	"liner/internal/logging"
	"liner/internal/search"
	"liner/internal/textutil"
	"liner/internal/track"
)

// lockFileName guards the output directory against concurrent exports.
const lockFileName = ".liner.lock"

// Exporter writes one build's catalog and index under an output directory.
type Exporter struct {
	outputDir string
	logger    *slog.Logger
}

// New returns an Exporter. A nil logger is replaced with a no-op one.
func New(outputDir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Exporter{outputDir: outputDir, logger: logger}
}

// Export serializes the catalog and index. Stale output from previous
// builds is replaced wholesale so the tree always reflects exactly one
// build.
func (e *Exporter) Export(ctx context.Context, cat *catalog.Catalog, idx *search.Index) error {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return &IOError{Path: e.outputDir, Err: err}
	}

	lock := flock.New(filepath.Join(e.outputDir, lockFileName))
	acquired, err := lock.TryLock()
	if err != nil {
		return &IOError{Path: lock.Path(), Err: err}
	}
	if !acquired {
		return fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := e.clean(); err != nil {
		return err
	}
	for _, dir := range []string{"artists", "albums", "tracks", "search"} {
		path := filepath.Join(e.outputDir, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return &IOError{Path: path, Err: err}
		}
	}

	lib := library.Build(cat)

	if err := e.writeLibraryIndex(lib); err != nil {
		return err
	}
	if err := e.writeSectionIndexes(); err != nil {
		return err
	}
	for _, artist := range lib.Artists() {
		if err := e.writeArtistPage(artist); err != nil {
			return err
		}
		for _, album := range artist.Albums {
			if err := e.writeAlbumPage(album); err != nil {
				return err
			}
		}
	}
	for trk := range cat.All() {
		if err := e.writeTrackPage(trk); err != nil {
			return err
		}
	}
	if err := e.writeSearchIndex(idx); err != nil {
		return err
	}
	if err := e.writeDatabase(ctx, cat, idx); err != nil {
		return err
	}

	e.logger.Info("export complete",
		"output", e.outputDir,
		"artists", lib.ArtistCount(),
		"albums", lib.AlbumCount(),
		"tracks", lib.TrackCount(),
	)
	return nil
}

// clean removes output from previous builds. The lock file survives
// because it lives outside the removed paths.
func (e *Exporter) clean() error {
	stale := []string{"_index.md", "artists", "albums", "tracks", "search", databaseFileName}
	for _, name := range stale {
		path := filepath.Join(e.outputDir, name)
		if err := os.RemoveAll(path); err != nil {
			return &IOError{Path: path, Err: err}
		}
	}
	return nil
}

func (e *Exporter) writeLibraryIndex(lib *library.Library) error {
	links := make([]artistLink, 0, lib.ArtistCount())
	for _, artist := range lib.Artists() {
		links = append(links, artistLink{Name: artist.Name, Slug: pageSlug(artist.Name)})
	}
	front := indexFrontMatter{
		Title:       "Music Library",
		SortBy:      "title",
		Template:    "index.html",
		ArtistCount: lib.ArtistCount(),
		AlbumCount:  lib.AlbumCount(),
		TrackCount:  lib.TrackCount(),
		Artists:     links,
	}
	return e.writePage(filepath.Join(e.outputDir, "_index.md"), front, "")
}

func (e *Exporter) writeSectionIndexes() error {
	sections := []struct {
		dir   string
		title string
	}{
		{"artists", "Artists"},
		{"albums", "Albums"},
		{"tracks", "Tracks"},
	}
	for _, section := range sections {
		front := sectionFrontMatter{Title: section.title, SortBy: "title", Template: "section.html"}
		path := filepath.Join(e.outputDir, section.dir, "_index.md")
		if err := e.writePage(path, front, ""); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeArtistPage(artist *library.Artist) error {
	albums := make([]albumSummary, 0, len(artist.Albums))
	for _, album := range artist.Albums {
		albums = append(albums, albumSummary{Title: album.Title, Year: album.Year, Tracks: album.TrackCount()})
	}
	front := artistFrontMatter{
		Title:    artist.Name,
		Template: "artist.html",
		Artist:   artist.Name,
		Albums:   albums,
	}
	path := filepath.Join(e.outputDir, "artists", pageSlug(artist.Name)+".md")
	return e.writePage(path, front, "")
}

func (e *Exporter) writeAlbumPage(album *library.Album) error {
	tracks := make([]trackInAlbum, 0, len(album.Tracks))
	for _, trk := range album.Tracks {
		tracks = append(tracks, trackInAlbum{Title: trk.Title, Length: trk.Length, URL: trk.URL})
	}
	front := albumFrontMatter{
		Title:      album.Title,
		Template:   "album.html",
		Album:      album.Title,
		Artist:     album.Artist,
		Year:       album.Year,
		Genre:      album.Genre,
		TrackTotal: album.TrackCount(),
		Tracks:     tracks,
	}
	path := filepath.Join(e.outputDir, "albums", pageSlug(album.Title)+".md")
	return e.writePage(path, front, "")
}

func (e *Exporter) writeTrackPage(trk *track.Track) error {
	// Derived fields are recomputed here so the export can never carry a
	// stale value, whatever happened upstream.
	front := trackFrontMatter{
		Title:         trk.Title,
		Template:      "track.html",
		Artist:        trk.Artist,
		Album:         trk.Album,
		Year:          trk.Year,
		Format:        trk.Format,
		Bitrate:       trk.Bitrate,
		Length:        trk.Length,
		Genre:         trk.Genre,
		URL:           trk.URL,
		SearchContent: derive.SearchContent(trk),
	}
	name := filepath.Base(trk.URL) + ".md"
	return e.writePage(filepath.Join(e.outputDir, "tracks", name), front, trk.Comments)
}

func (e *Exporter) writeSearchIndex(idx *search.Index) error {
	tokens := idx.Tokens()
	entries := make([]tokenEntry, 0, len(tokens))
	for _, token := range tokens {
		entries = append(entries, tokenEntry{Token: token, URLs: idx.Lookup(token)})
	}
	file := searchIndexFile{TokenCount: len(tokens), Tokens: entries}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal search index: %w", err)
	}
	path := filepath.Join(e.outputDir, "search", "index.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func (e *Exporter) writePage(path string, front any, body string) error {
	data, err := renderPage(front, body)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// pageSlug slugs artist and album names for page paths. Unlike track
// titles, these are not validated as sluggable, so an all-punctuation name
// falls back to a stable placeholder.
func pageSlug(name string) string {
	slug := textutil.Slugify(name)
	if slug == "" {
		return "unknown"
	}
	return slug
}
