// Package track defines the validated in-memory representation of one
// catalog entry and the parsers for its structured fields.
//
// A Track is immutable once it has passed validation and derivation; the
// catalog models updates as remove-then-insert rather than mutation. The
// Bitrate and Length fields keep their display form ("746kbps", "6:15") and
// re-derive their numeric values on demand for sorting and filtering.
package track
