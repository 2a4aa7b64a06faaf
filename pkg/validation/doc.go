// SPDX-License-Identifier: MPL-2.0

// Package validation provides the structured error type shared by all
// portkit validators.
//
// A validator that rejects an input returns a *validation.Error carrying
// three pieces of context: the field path of the value inside whatever
// structure is being validated (Root for standalone scalars), a
// human-readable reason, and the offending raw value. The categorizing
// sentinel wrapped by the error is supplied by the validator itself, so
// callers can branch with errors.Is without parsing messages:
//
//	_, err := types.ValidatePort(validation.Root.Child("server").Child("port"), raw)
//	if errors.Is(err, types.ErrPortRange) {
//	    // out of bounds, as opposed to malformed
//	}
package validation
