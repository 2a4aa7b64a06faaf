// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests redirect config lookup away from the real
// user config directory. os.UserHomeDir() doesn't reliably respect the
// HOME environment variable on all platforms (e.g., macOS in CI), so
// tests set this instead of HOME.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup.
func Reset() {
	configDirOverride = ""
}
