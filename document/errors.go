package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath is returned by Save when no file path is bound. The host must
	// resolve a path with SaveAs first.
	ErrNoPath = errors.New("document: no file path bound")

	// ErrInvalidEncoding is wrapped by IOError when a file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("document: file is not valid UTF-8")

	// ErrUnknownFont is returned for font labels outside the closed font set.
	ErrUnknownFont = errors.New("document: unknown font")
)

// IOError reports a failed open or save.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// BoundsError reports an offset outside [0, Len].
type BoundsError struct {
	Offset int
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("document: offset %d out of range [0, %d]", e.Offset, e.Len)
}
