// SPDX-License-Identifier: MPL-2.0

package types

import (
	"github.com/portkit/portkit/pkg/validation"
)

type (
	// portOptions holds the configuration for a single validation call.
	portOptions struct {
		min     int
		max     int
		path    validation.Path
		onError func(*validation.Error) Port
	}

	// Option configures port validation behavior.
	Option func(*portOptions)
)

// defaultPortOptions returns the default validation options: the full
// 16-bit port space, the Root path, and no error handler.
func defaultPortOptions() portOptions {
	return portOptions{
		min:  MinPort,
		max:  MaxPort,
		path: validation.Root,
	}
}

// WithMin sets the inclusive lower bound. Default is MinPort (0).
func WithMin(min int) Option {
	return func(o *portOptions) {
		o.min = min
	}
}

// WithMax sets the inclusive upper bound. Default is MaxPort (65535).
func WithMax(max int) Option {
	return func(o *portOptions) {
		o.max = max
	}
}

// WithRange sets both inclusive bounds at once. Validation never widens
// beyond the bounds given here; a range with min > max admits no value.
func WithRange(min, max int) Option {
	return func(o *portOptions) {
		o.min = min
		o.max = max
	}
}

// WithPath sets the field path used in error messages by NewPort,
// MustPort, and IsPort. Default is validation.Root. ValidatePort takes
// its path as an explicit argument and ignores this option.
func WithPath(path validation.Path) Option {
	return func(o *portOptions) {
		o.path = path
	}
}

// WithErrorHandler sets the recovery handler invoked by MustPort when
// validation fails. The handler receives the structured error and returns
// a substitute Port. Without a handler, MustPort panics.
func WithErrorHandler(h func(*validation.Error) Port) Option {
	return func(o *portOptions) {
		o.onError = h
	}
}
