// Package ingest drives one catalog build: it scans the source directory,
// parses and derives records, assembles the catalog, and builds the search
// index.
//
// Records parse concurrently because parsing is pure; results join back in
// input order so catalog iteration is reproducible across runs. Malformed
// records either halt the build (strict mode) or are skipped and collected
// into the build report (lenient mode). A duplicate URL always halts:
// it means two titles collide and continuing would corrupt the catalog's
// uniqueness invariant.
package ingest
