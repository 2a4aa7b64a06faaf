// SPDX-License-Identifier: MPL-2.0

// Package types provides the validated Port safe type.
//
// A Port carries an implicit "already validated" guarantee: every Port in
// circulation was accepted by the validator against inclusive bounds
// (default 0-65535), and validation is the only gate. The input's runtime
// representation, native number or decimal string, is preserved through
// construction and normalized only by the explicit resolver methods
// Number and String, so the same Port flows through string-oriented
// contexts (environment variables, URLs) and numeric ones (socket APIs)
// without forced conversion.
//
// Four entry points share one acceptance algorithm:
//
//	types.ValidatePort(path, input, opts...)  // result + structured error
//	types.NewPort(input, opts...)             // canonical constructor
//	types.IsPort(input, opts...)              // non-panicking guard
//	types.MustPort(input, opts...)            // panicking guarantee
//
// This package only validates that a value could legally serve as a
// TCP/UDP port number; it never binds sockets or resolves addresses.
package types
