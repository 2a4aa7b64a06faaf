// SPDX-License-Identifier: MPL-2.0

package validation

import "strconv"

// Root is the path of a standalone value that is not nested inside any
// enclosing structure. All other paths are built from it with Child and
// Index.
const Root Path = "$"

// Path identifies where a value lives inside a nested structure, in
// JSON-path-like notation (e.g. "$.server.port", "$.listeners[2]").
// Paths appear only in error messages; they carry no semantics beyond
// helping a user locate the invalid field.
type Path string

// Child returns the path of a named field under p.
func (p Path) Child(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

// Index returns the path of the i-th element under p.
func (p Path) Index(i int) Path {
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

// String returns the path in JSON-path notation.
func (p Path) String() string { return string(p) }
