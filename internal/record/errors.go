package record

import (
	"errors"
	"fmt"
)

// ErrMalformed marks every record validation failure so callers can test
// with errors.Is without caring which field was at fault.
var ErrMalformed = errors.New("malformed record")

// Reasons attached to MalformedError. Kept as constants so ingest reports
// group consistently.
const (
	ReasonMissingField       = "missing field"
	ReasonInvalidBitrate     = "invalid bitrate"
	ReasonInvalidLength      = "invalid length"
	ReasonInvalidYear        = "invalid year"
	ReasonInvalidEncoding    = "invalid encoding"
	ReasonInvalidFrontMatter = "invalid front matter"
	ReasonUnslugerizable     = "unslugerizable title"
)

// MalformedError describes a record that failed validation. Record carries
// the source name (usually the file name) for reporting; Field is empty for
// document-level failures such as bad encoding.
type MalformedError struct {
	Record string
	Field  string
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	msg := fmt.Sprintf("malformed record %s: %s", e.Record, e.Reason)
	if e.Field != "" {
		msg += fmt.Sprintf(" (%s)", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}
