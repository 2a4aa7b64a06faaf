// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/portkit/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/portkit/config.cue on macOS, %APPDATA%\portkit\config.cue
// on Windows), then overridden by PORTKIT_* environment variables. The config declares
// named port ranges and the default bounds used when no explicit range is requested.
//
// Files are validated against a CUE schema (config_schema.cue) for field-level bounds;
// the cross-field min <= max constraint per range is checked after decoding.
package config
