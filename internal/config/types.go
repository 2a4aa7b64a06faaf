// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/portkit/portkit/pkg/types"
	"github.com/portkit/portkit/pkg/validation"
)

// Built-in range names, always resolvable even with no config file.
const (
	RangeFull       = "full"
	RangeWellKnown  = "well-known"
	RangeRegistered = "registered"
	RangeDynamic    = "dynamic"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownRange is returned when a range name resolves to neither a
	// configured nor a built-in range.
	ErrUnknownRange = errors.New("unknown range")
)

type (
	// Config is the portkit configuration. All fields have working
	// defaults; a config file only overrides them.
	Config struct {
		// DefaultRange bounds validation when no explicit range is given.
		DefaultRange RangeConfig `mapstructure:"default_range" toml:"default_range"`

		// Ranges maps user-defined range names to their bounds. Entries
		// shadow the built-in names on lookup.
		Ranges map[string]RangeConfig `mapstructure:"ranges" toml:"ranges"`

		// UI holds user interface preferences.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// RangeConfig is the raw (pre-validation) form of a named port range.
	RangeConfig struct {
		Min int `mapstructure:"min" toml:"min"`
		Max int `mapstructure:"max" toml:"max"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// Verbose enables diagnostic logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// InvalidConfigError is returned when a loaded Config has invalid
	// fields. It wraps ErrInvalidConfig for errors.Is() compatibility and
	// collects the field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultRange: RangeConfig{Min: types.MinPort, Max: types.MaxPort},
		Ranges:       map[string]RangeConfig{},
	}
}

// builtinRanges are the IANA ranges resolvable without configuration.
var builtinRanges = map[string]types.PortRange{
	RangeFull:       {Min: types.MustPort(types.MinPort), Max: types.MustPort(types.MaxPort)},
	RangeWellKnown:  {Min: types.MustPort(types.WellKnownMin), Max: types.MustPort(types.WellKnownMax)},
	RangeRegistered: {Min: types.MustPort(types.RegisteredMin), Max: types.MustPort(types.RegisteredMax)},
	RangeDynamic:    {Min: types.MustPort(types.DynamicMin), Max: types.MustPort(types.DynamicMax)},
}

// BuiltinRangeNames returns the names of the built-in IANA ranges.
func BuiltinRangeNames() []string {
	return []string{RangeFull, RangeWellKnown, RangeRegistered, RangeDynamic}
}

// PortRange converts the raw range to a validated types.PortRange. The
// path locates the range inside the config for error messages.
func (r RangeConfig) PortRange(path validation.Path) (types.PortRange, error) {
	min, err := types.ValidatePort(path.Child("min"), r.Min)
	if err != nil {
		return types.PortRange{}, err
	}
	max, err := types.ValidatePort(path.Child("max"), r.Max)
	if err != nil {
		return types.PortRange{}, err
	}
	pr := types.PortRange{Min: min, Max: max}
	if err := pr.Validate(); err != nil {
		return types.PortRange{}, err
	}
	return pr, nil
}

// Validate checks every range in the Config, returning an
// InvalidConfigError collecting all field-level failures.
func (c *Config) Validate() error {
	var fieldErrs []error

	if _, err := c.DefaultRange.PortRange(validation.Root.Child("default_range")); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	for name, r := range c.Ranges {
		path := validation.Root.Child("ranges").Child(name)
		if _, err := r.PortRange(path); err != nil {
			fieldErrs = append(fieldErrs, err)
		}
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// Range resolves a range name to its bounds. Configured ranges shadow the
// built-in IANA names. Returns ErrUnknownRange for unresolvable names.
func (c *Config) Range(name string) (types.PortRange, error) {
	if r, ok := c.Ranges[name]; ok {
		return r.PortRange(validation.Root.Child("ranges").Child(name))
	}
	if r, ok := builtinRanges[name]; ok {
		return r, nil
	}
	return types.PortRange{}, fmt.Errorf("%w: %q", ErrUnknownRange, name)
}

// Default resolves the configured default range.
func (c *Config) Default() (types.PortRange, error) {
	return c.DefaultRange.PortRange(validation.Root.Child("default_range"))
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d invalid fields (first: %v)",
		len(e.FieldErrors), e.FieldErrors[0])
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
