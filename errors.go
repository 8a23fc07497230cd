package geojson

import (
	"errors"
	"fmt"
)

// ErrFormat is the base error for malformed GeoJSON input. All
// *FormatError values match it via errors.Is.
var ErrFormat = errors.New("malformed GeoJSON")

// FormatError indicates that the token stream did not match the expected
// grammar at some position. It is fatal for the whole read: no partial
// feature is returned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FormatError struct {
	// Member is the member being read when the error occurred, if known.
	Member string
	// Reason describes the violated expectation.
	Reason string

	cause error
}

func (e *FormatError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("malformed GeoJSON: member %q: %s", e.Member, e.Reason)
	}
	return fmt.Sprintf("malformed GeoJSON: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.cause }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErr(member, reason string, cause error) error {
	return &FormatError{Member: member, Reason: reason, cause: cause}
}

func formatErrf(member string, cause error, format string, args ...any) error {
	return &FormatError{Member: member, Reason: fmt.Sprintf(format, args...), cause: cause}
}
