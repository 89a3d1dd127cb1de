// Package record parses raw track records into validated Tracks.
//
// A record is a Zola-style document: TOML front matter delimited by "+++"
// lines, followed by a free-text body that becomes the track's liner-note
// comments. The parser validates every canonical field, normalizes text to
// NFC so slugs and search tokens are stable across input encodings, and
// rejects files that are not valid UTF-8. The body is never interpreted
// beyond the UTF-8 check.
//
// Parsing is a pure function of its input; failures are reported as
// *MalformedError naming the offending field.
package record
