// Package syntax decodes minire patterns into atoms.
//
// A pattern is never turned into a tree. Callers walk it left to right with
// ExtractAtom, which decodes one (class, quantifier) pair at a time and
// reports how many pattern runes it spans. The anchors '^' and '$' are not
// atoms: callers must intercept them before calling ExtractAtom.
package syntax

import (
	"errors"
	"fmt"
)

// Pattern errors
var (
	// ErrMalformedPattern is wrapped by every error caused by a pattern that
	// cannot be decoded.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrTrailingBackslash indicates a '\' with nothing after it
	ErrTrailingBackslash = fmt.Errorf("%w: trailing backslash", ErrMalformedPattern)

	// ErrUnexpectedAnchor indicates that an anchor reached the atom decoder.
	// Anchors are position checks and must be handled by the caller.
	ErrUnexpectedAnchor = fmt.Errorf("%w: anchor is not an atom", ErrMalformedPattern)
)

// PatternError records the pattern and rune offset at which decoding failed.
type PatternError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("minire: pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("minire: offset %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error
func (e *PatternError) Unwrap() error {
	return e.Err
}
