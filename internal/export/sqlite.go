package export

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"liner/internal/catalog"
	"liner/internal/derive"
	"liner/internal/search"
)

// databaseFileName is the queryable artifact written next to the pages.
const databaseFileName = "catalog.db"

const databaseSchema = `
CREATE TABLE tracks (
    position        INTEGER NOT NULL,
    url             TEXT PRIMARY KEY,
    title           TEXT NOT NULL,
    artist          TEXT NOT NULL,
    album           TEXT NOT NULL,
    year            INTEGER NOT NULL,
    format          TEXT NOT NULL,
    bitrate         TEXT NOT NULL,
    bitrate_kbps    INTEGER NOT NULL,
    length          TEXT NOT NULL,
    length_seconds  INTEGER NOT NULL,
    genre           TEXT NOT NULL,
    search_content  TEXT NOT NULL,
    comments        TEXT NOT NULL
);

CREATE TABLE search_terms (
    token TEXT NOT NULL,
    url   TEXT NOT NULL REFERENCES tracks(url),
    PRIMARY KEY (token, url)
) WITHOUT ROWID;

CREATE INDEX idx_tracks_artist ON tracks(artist);
CREATE INDEX idx_tracks_album ON tracks(album);
`

// writeDatabase emits catalog.db from scratch. The file is recreated each
// build and rows insert in catalog/token order, so identical input produces
// an identical file.
func (e *Exporter) writeDatabase(ctx context.Context, cat *catalog.Catalog, idx *search.Index) error {
	path := filepath.Join(e.outputDir, databaseFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &IOError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer db.Close()

	// Rollback journaling would leave sidecar files in the output tree;
	// the database is written once and never updated in place.
	pragmas := []string{
		"PRAGMA journal_mode=OFF",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return &IOError{Path: path, Err: err}
		}
	}

	if _, err := db.ExecContext(ctx, databaseSchema); err != nil {
		return &IOError{Path: path, Err: err}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	position := 0
	for trk := range cat.All() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tracks (
                position, url, title, artist, album, year, format,
                bitrate, bitrate_kbps, length, length_seconds, genre,
                search_content, comments
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			position,
			trk.URL,
			trk.Title,
			trk.Artist,
			trk.Album,
			trk.Year,
			trk.Format,
			trk.Bitrate,
			trk.BitrateKbps(),
			trk.Length,
			trk.LengthSeconds(),
			trk.Genre,
			derive.SearchContent(trk),
			trk.Comments,
		)
		if err != nil {
			return &IOError{Path: path, Err: err}
		}
		position++
	}

	for _, token := range idx.Tokens() {
		for _, url := range idx.Lookup(token) {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO search_terms (token, url) VALUES (?, ?)`,
				token, url,
			); err != nil {
				return &IOError{Path: path, Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
