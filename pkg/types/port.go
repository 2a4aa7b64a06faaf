// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Default inclusive bounds for port validation: the full unsigned 16-bit
// port number space.
const (
	MinPort = 0
	MaxPort = 65535
)

// IANA port range boundaries (RFC 6335).
const (
	// WellKnownMin/WellKnownMax bound the system ports assigned by IANA.
	WellKnownMin = 0
	WellKnownMax = 1023

	// RegisteredMin/RegisteredMax bound the user ports registered with IANA.
	RegisteredMin = 1024
	RegisteredMax = 49151

	// DynamicMin/DynamicMax bound the dynamic (ephemeral, private) ports.
	DynamicMin = 49152
	DynamicMax = 65535
)

var (
	// ErrInvalidPort is the umbrella sentinel wrapped by every port
	// validation failure. The four category sentinels below narrow it.
	ErrInvalidPort = errors.New("invalid port")

	// ErrPortType is the sentinel for inputs that are neither a number
	// nor a string.
	ErrPortType = fmt.Errorf("%w: unsupported input type", ErrInvalidPort)

	// ErrPortFormat is the sentinel for strings that are not a clean
	// decimal integer rendering.
	ErrPortFormat = fmt.Errorf("%w: malformed port string", ErrInvalidPort)

	// ErrPortNotInteger is the sentinel for numeric inputs with a
	// fractional component.
	ErrPortNotInteger = fmt.Errorf("%w: fractional value", ErrInvalidPort)

	// ErrPortRange is the sentinel for integers outside the inclusive
	// bounds in effect for the validation.
	ErrPortRange = fmt.Errorf("%w: out of range", ErrInvalidPort)
)

// Port is a validated IP port number. At runtime it holds one of two
// representations, preserved from whatever the caller supplied to the
// validator: a native integer or its decimal string. The two resolver
// methods, Number and String, normalize to a definite representation;
// nothing mutates a Port after construction.
//
// The zero value is the numeric port 0, which is valid under the default
// bounds. All other Ports are created through ValidatePort, NewPort,
// MustPort, or PortOf, so any Port in circulation already satisfies the
// bounds it was validated against.
type Port struct {
	value  int
	text   string
	isText bool
}

// Number resolves the Port to its integer value. String-form Ports were
// parsed at construction, so this is a plain field read either way.
func (p Port) Number() int { return p.value }

// String resolves the Port to its decimal string. A Port constructed from
// a string returns that string unchanged; a numeric Port is formatted.
func (p Port) String() string {
	if p.isText {
		return p.text
	}
	return strconv.Itoa(p.value)
}

// IsWellKnown reports whether the port is in the IANA system range (0-1023).
func (p Port) IsWellKnown() bool {
	return p.value >= WellKnownMin && p.value <= WellKnownMax
}

// IsRegistered reports whether the port is in the IANA user range (1024-49151).
func (p Port) IsRegistered() bool {
	return p.value >= RegisteredMin && p.value <= RegisteredMax
}

// IsDynamic reports whether the port is in the IANA dynamic range (49152-65535).
func (p Port) IsDynamic() bool {
	return p.value >= DynamicMin
}

// MarshalText implements encoding.TextMarshaler. The marshaled form is
// the Port's String resolution, so string-form Ports round-trip verbatim.
func (p Port) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// validated against the default bounds and the string representation is
// preserved, so Ports decode directly inside TOML, CUE, and JSON
// configuration without a separate validation pass.
func (p *Port) UnmarshalText(text []byte) error {
	parsed, err := ValidatePort("port", string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
