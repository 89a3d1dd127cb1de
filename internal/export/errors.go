package export

import (
	"errors"
	"fmt"
)

// ErrIO marks every export write failure so callers can test with
// errors.Is and decide whether to retry the build.
var ErrIO = errors.New("export io failure")

// ErrLocked indicates another export holds the output directory lock.
var ErrLocked = errors.New("output directory locked by another export")

// IOError reports a failed write with enough context to retry.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
