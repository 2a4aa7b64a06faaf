// SPDX-License-Identifier: MPL-2.0

package validation

import "fmt"

// Error is a structured validation failure. It records the field path of
// the rejected value, a categorizing sentinel error, a human-readable
// reason, and the raw value as supplied by the caller.
//
// Error never wraps another *Error: validation of a single scalar is
// all-or-nothing, so the chain below an Error consists only of its
// categorizing sentinel.
type Error struct {
	// Path locates the rejected value inside the enclosing structure.
	Path Path

	// Err is the sentinel that categorizes the failure, for use with
	// errors.Is. It is supplied by the validator constructing the Error.
	Err error

	// Reason is a human-readable description of why the value was
	// rejected (e.g. "must be an integer between 0 and 65535").
	Reason string

	// Value is the offending raw input, kept for diagnostics.
	Value any
}

// NewError constructs an Error. The sentinel categorizes the failure and
// must be non-nil; reason is the human-readable description; value is the
// rejected raw input.
func NewError(path Path, sentinel error, reason string, value any) *Error {
	return &Error{Path: path, Err: sentinel, Reason: reason, Value: value}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (got %s)", e.Path, e.Reason, formatValue(e.Value))
}

// Unwrap returns the categorizing sentinel for errors.Is() compatibility.
func (e *Error) Unwrap() error { return e.Err }

// formatValue renders the raw value for an error message. Strings are
// quoted so that empty and whitespace-only inputs remain visible.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v of type %T", v, v)
	}
}
