// Package report renders an end-of-build summary for humans. Output goes to
// the terminal, with ANSI color when the destination is a TTY, and includes
// the skipped records and derived-field warnings collected during the build.
package report
