// SPDX-License-Identifier: MPL-2.0

package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/portkit/portkit/pkg/validation"
)

// ValidatePort checks whether input denotes a valid port number and
// returns it as a Port with the caller's representation preserved.
//
// Accepted inputs are native integers of any width, floats with no
// fractional part, strings that are exactly the decimal rendering of an
// integer, json.Number, and already-validated Ports (re-checked against
// the bounds, useful for narrowing). Everything else is rejected.
//
// The path locates the value inside any enclosing structure and is used
// only in error messages; pass validation.Root for a standalone scalar.
// On rejection the returned error is a *validation.Error wrapping one of
// the ErrPort* sentinels. ValidatePort never panics.
func ValidatePort(path validation.Path, input any, opts ...Option) (Port, error) {
	o := defaultPortOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, verr := validatePort(path, input, o)
	if verr != nil {
		return Port{}, verr
	}
	return p, nil
}

// NewPort is the canonical constructor for a Port from raw input: it
// validates against the default or caller-supplied bounds and returns the
// structured error on rejection. Use WithPath to locate the value in
// error messages when constructing from a nested structure.
func NewPort(input any, opts ...Option) (Port, error) {
	o := defaultPortOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, verr := validatePort(o.path, input, o)
	if verr != nil {
		return Port{}, verr
	}
	return p, nil
}

// PortOf constructs a Port from a value of any native integer type,
// avoiding the any boxing of NewPort at call sites that already hold a
// typed integer.
func PortOf[T constraints.Integer](n T, opts ...Option) (Port, error) {
	if n < 0 {
		return NewPort(int64(n), opts...)
	}
	return NewPort(uint64(n), opts...)
}

// IsPort reports whether input denotes a valid port number under the
// default or caller-supplied bounds. It never panics and discards the
// failure detail; use ValidatePort or NewPort to learn why a value was
// rejected.
func IsPort(input any, opts ...Option) bool {
	o := defaultPortOptions()
	for _, opt := range opts {
		opt(&o)
	}
	_, verr := validatePort(o.path, input, o)
	return verr == nil
}

// MustPort validates like NewPort but treats rejection as fatal: it
// panics with the *validation.Error. A caller that wants non-fatal
// recovery supplies WithErrorHandler, whose return value substitutes for
// the invalid input.
func MustPort(input any, opts ...Option) Port {
	o := defaultPortOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, verr := validatePort(o.path, input, o)
	if verr == nil {
		return p
	}
	if o.onError != nil {
		return o.onError(verr)
	}
	panic(verr)
}

// validatePort is the single acceptance algorithm behind all exported
// entry points. It returns the validated Port, preserving the caller's
// representation, or a structured error naming the failure category.
func validatePort(path validation.Path, input any, o portOptions) (Port, *validation.Error) {
	switch v := input.(type) {
	case int:
		return checkBounds(path, input, int64(v), o)
	case int8:
		return checkBounds(path, input, int64(v), o)
	case int16:
		return checkBounds(path, input, int64(v), o)
	case int32:
		return checkBounds(path, input, int64(v), o)
	case int64:
		return checkBounds(path, input, v, o)
	case uint:
		return checkUnsigned(path, input, uint64(v), o)
	case uint8:
		return checkBounds(path, input, int64(v), o)
	case uint16:
		return checkBounds(path, input, int64(v), o)
	case uint32:
		return checkBounds(path, input, int64(v), o)
	case uint64:
		return checkUnsigned(path, input, v, o)
	case uintptr:
		return checkUnsigned(path, input, uint64(v), o)
	case float32:
		return checkFloat(path, input, float64(v), o)
	case float64:
		return checkFloat(path, input, v, o)
	case string:
		return checkText(path, v, o)
	case json.Number:
		return checkText(path, v.String(), o)
	case Port:
		// Re-validating an existing Port narrows it to tighter bounds
		// while keeping its representation.
		if verr := boundsError(path, input, int64(v.value), o); verr != nil {
			return Port{}, verr
		}
		return v, nil
	default:
		return Port{}, validation.NewError(path, ErrPortType,
			"must be a number or a decimal digit string", input)
	}
}

// checkBounds accepts an integer input already widened to int64.
func checkBounds(path validation.Path, raw any, n int64, o portOptions) (Port, *validation.Error) {
	if verr := boundsError(path, raw, n, o); verr != nil {
		return Port{}, verr
	}
	return Port{value: int(n)}, nil
}

// checkUnsigned guards against uint64 values too large for int64 before
// delegating to the signed bounds check.
func checkUnsigned(path validation.Path, raw any, u uint64, o portOptions) (Port, *validation.Error) {
	if u > math.MaxInt64 {
		return Port{}, rangeError(path, raw, o)
	}
	return checkBounds(path, raw, int64(u), o)
}

// checkFloat accepts a float input only when it is a finite value with no
// fractional part, then applies the bounds check.
func checkFloat(path validation.Path, raw any, f float64, o portOptions) (Port, *validation.Error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Port{}, validation.NewError(path, ErrPortNotInteger,
			"must be a finite integer", raw)
	}
	if math.Trunc(f) != f {
		return Port{}, validation.NewError(path, ErrPortNotInteger,
			"must be an integer with no fractional part", raw)
	}
	// Reject magnitudes beyond int64 before converting.
	if f < math.MinInt64 || f > math.MaxInt64 {
		return Port{}, rangeError(path, raw, o)
	}
	return checkBounds(path, raw, int64(f), o)
}

// checkText accepts a string iff it is byte-for-byte the decimal
// rendering of its parsed integer: no signs, no leading zeros, no
// surrounding whitespace, no fractional part. A clean negative like "-1"
// parses here and is then rejected by the bounds check, mirroring the
// treatment of negative numeric input.
func checkText(path validation.Path, s string, o portOptions) (Port, *validation.Error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != s {
		return Port{}, validation.NewError(path, ErrPortFormat,
			"must be the decimal rendering of an integer", s)
	}
	if verr := boundsError(path, s, n, o); verr != nil {
		return Port{}, verr
	}
	return Port{value: int(n), text: s, isText: true}, nil
}

// boundsError returns the out-of-range error for n, or nil if n lies
// within the inclusive bounds.
func boundsError(path validation.Path, raw any, n int64, o portOptions) *validation.Error {
	if n < int64(o.min) || n > int64(o.max) {
		return rangeError(path, raw, o)
	}
	return nil
}

func rangeError(path validation.Path, raw any, o portOptions) *validation.Error {
	return validation.NewError(path, ErrPortRange,
		fmt.Sprintf("must be an integer between %d and %d", o.min, o.max), raw)
}
