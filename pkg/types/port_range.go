// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portkit/portkit/pkg/validation"
)

// ErrInvalidPortRange is the sentinel error wrapped by InvalidPortRangeError.
var ErrInvalidPortRange = errors.New("invalid port range")

type (
	// PortRange is an inclusive span of port numbers. Both endpoints are
	// validated Ports; a valid range additionally requires Min <= Max.
	PortRange struct {
		Min Port
		Max Port
	}

	// InvalidPortRangeError is returned when a PortRange's endpoints are
	// inverted. It wraps ErrInvalidPortRange for errors.Is() compatibility.
	InvalidPortRangeError struct {
		Value PortRange
	}
)

// FullPortRange returns the range covering the whole 16-bit port space.
func FullPortRange() PortRange {
	return PortRange{Min: MustPort(MinPort), Max: MustPort(MaxPort)}
}

// ParsePortRange parses "min-max" or a single "port" (a one-element
// range) into a PortRange. Both endpoints follow the strict string
// acceptance policy of ValidatePort.
func ParsePortRange(s string) (PortRange, error) {
	lo, hi, split := strings.Cut(s, "-")
	if !split {
		p, err := ValidatePort(validation.Root, s)
		if err != nil {
			return PortRange{}, err
		}
		return PortRange{Min: p, Max: p}, nil
	}
	min, err := ValidatePort(validation.Root.Child("min"), lo)
	if err != nil {
		return PortRange{}, err
	}
	max, err := ValidatePort(validation.Root.Child("max"), hi)
	if err != nil {
		return PortRange{}, err
	}
	r := PortRange{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return PortRange{}, err
	}
	return r, nil
}

// Validate returns an error if the range's endpoints are inverted.
func (r PortRange) Validate() error {
	if r.Min.Number() > r.Max.Number() {
		return &InvalidPortRangeError{Value: r}
	}
	return nil
}

// Contains reports whether p lies within the inclusive range.
func (r PortRange) Contains(p Port) bool {
	return p.Number() >= r.Min.Number() && p.Number() <= r.Max.Number()
}

// Options returns the validation options that restrict port acceptance to
// this range, for passing to ValidatePort and friends.
func (r PortRange) Options() []Option {
	return []Option{WithRange(r.Min.Number(), r.Max.Number())}
}

// String renders the range as "min-max", or as a single port when the
// endpoints coincide.
func (r PortRange) String() string {
	if r.Min.Number() == r.Max.Number() {
		return r.Min.String()
	}
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}

// Error implements the error interface for InvalidPortRangeError.
func (e *InvalidPortRangeError) Error() string {
	return fmt.Sprintf("invalid port range %s-%s: min must not exceed max",
		e.Value.Min, e.Value.Max)
}

// Unwrap returns ErrInvalidPortRange for errors.Is() compatibility.
func (e *InvalidPortRangeError) Unwrap() error { return ErrInvalidPortRange }
