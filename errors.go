package scriptrun

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scriptrun package.
var (
	// ErrInvalidArgument is returned for a region that does not fit its
	// text and for a locale that cannot be parsed.
	ErrInvalidArgument = errors.New("scriptrun: invalid argument")

	// ErrUnknownScript is returned by ParseScript for names and codes that
	// match no script.
	ErrUnknownScript = errors.New("scriptrun: unknown script")
)

// RangeError describes a rejected (start, count) region.
// It matches ErrInvalidArgument with errors.Is.
type RangeError struct {
	Start  int
	Count  int
	Length int // length of the text the region was checked against
}

func (e *RangeError) Error() string {
	switch {
	case e.Start < 0:
		return fmt.Sprintf("scriptrun: invalid argument: negative start %d", e.Start)
	case e.Count < 0:
		return fmt.Sprintf("scriptrun: invalid argument: negative count %d", e.Count)
	default:
		return fmt.Sprintf("scriptrun: invalid argument: region [%d, %d+%d) exceeds text length %d",
			e.Start, e.Start, e.Count, e.Length)
	}
}

// Unwrap returns ErrInvalidArgument.
func (e *RangeError) Unwrap() error {
	return ErrInvalidArgument
}

// checkRange validates a region against a text of the given length.
// A nil or empty text only accepts the empty region at 0.
func checkRange(length, start, count int) error {
	if start < 0 || count < 0 || start > length-count {
		return &RangeError{Start: start, Count: count, Length: length}
	}
	return nil
}
