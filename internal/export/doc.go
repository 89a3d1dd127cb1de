// Package export serializes a built catalog and search index into the
// content tree consumed by the static-site renderer.
//
// The tree mirrors the site layout: a library index, section indexes, one
// page per artist, album, and track (TOML front matter, liner-note comments
// as the body), a search/index.toml token table, and a catalog.db SQLite
// artifact for client-side queries. Every track field round-trips
// losslessly and derived fields are recomputed at export time, so exported
// output is byte-identical across builds of the same input. The output
// directory is guarded with a file lock for the duration of the export.
//
// Once validated tracks reach this stage the only failure mode is I/O;
// failures carry the path that could not be written.
package export
