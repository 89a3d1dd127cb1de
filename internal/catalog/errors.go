package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no track exists at the requested URL.
var ErrNotFound = errors.New("track not found")

// ErrNotDerived indicates a track reached the catalog before derivation
// populated its URL.
var ErrNotDerived = errors.New("track has no derived url")

// ErrDuplicateURL marks every URL collision so callers can test with
// errors.Is.
var ErrDuplicateURL = errors.New("duplicate url")

// DuplicateURLError reports two distinct records slugging to the same URL.
// Always fatal: the build halts rather than hiding a title collision.
type DuplicateURLError struct {
	URL      string
	Existing string
	Incoming string
}

func (e *DuplicateURLError) Error() string {
	return fmt.Sprintf("duplicate url %s: %q collides with already-cataloged %q", e.URL, e.Incoming, e.Existing)
}

func (e *DuplicateURLError) Unwrap() error {
	return ErrDuplicateURL
}
