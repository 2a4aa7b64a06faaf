// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/portkit/portkit/pkg/types"
	"github.com/portkit/portkit/pkg/validation"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultRange.Min != types.MinPort {
		t.Errorf("expected default range min to be %d, got %d", types.MinPort, cfg.DefaultRange.Min)
	}
	if cfg.DefaultRange.Max != types.MaxPort {
		t.Errorf("expected default range max to be %d, got %d", types.MaxPort, cfg.DefaultRange.Max)
	}
	if len(cfg.Ranges) != 0 {
		t.Errorf("expected no configured ranges by default, got %v", cfg.Ranges)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestConfig_Range(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ranges["app"] = RangeConfig{Min: 3000, Max: 3999}

	t.Run("configured range", func(t *testing.T) {
		r, err := cfg.Range("app")
		if err != nil {
			t.Fatalf("Range(app) error: %v", err)
		}
		if r.String() != "3000-3999" {
			t.Errorf("Range(app) = %s, want 3000-3999", r)
		}
	})

	t.Run("builtin range", func(t *testing.T) {
		r, err := cfg.Range(RangeRegistered)
		if err != nil {
			t.Fatalf("Range(registered) error: %v", err)
		}
		if r.String() != "1024-49151" {
			t.Errorf("Range(registered) = %s, want 1024-49151", r)
		}
	})

	t.Run("configured shadows builtin", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ranges[RangeDynamic] = RangeConfig{Min: 60000, Max: 65535}
		r, err := cfg.Range(RangeDynamic)
		if err != nil {
			t.Fatalf("Range(dynamic) error: %v", err)
		}
		if r.String() != "60000-65535" {
			t.Errorf("Range(dynamic) = %s, want the configured override", r)
		}
	})

	t.Run("unknown range", func(t *testing.T) {
		_, err := cfg.Range("nope")
		if !errors.Is(err, ErrUnknownRange) {
			t.Errorf("Range(nope) error = %v, want ErrUnknownRange", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("out of bounds range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ranges["bad"] = RangeConfig{Min: -1, Max: 100}

		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
		}
		var cfgErr *InvalidConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("error should be *InvalidConfigError, got %T", err)
		}
		if len(cfgErr.FieldErrors) != 1 {
			t.Fatalf("expected 1 field error, got %d", len(cfgErr.FieldErrors))
		}
		var verr *validation.Error
		if !errors.As(cfgErr.FieldErrors[0], &verr) {
			t.Fatalf("field error should be *validation.Error, got %T", cfgErr.FieldErrors[0])
		}
		if got, want := verr.Path.String(), "$.ranges.bad.min"; got != want {
			t.Errorf("field error path = %q, want %q", got, want)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DefaultRange = RangeConfig{Min: 2000, Max: 1000}
		if err := cfg.Validate(); !errors.Is(err, types.ErrInvalidPortRange) {
			t.Errorf("Validate() error = %v, want ErrInvalidPortRange", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("no config file uses defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{ConfigDirPath: t.TempDir()})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.DefaultRange.Max != types.MaxPort {
			t.Errorf("default range max = %d, want %d", cfg.DefaultRange.Max, types.MaxPort)
		}
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
default_range: {
	min: 1024
	max: 49151
}
ranges: {
	app: {
		min: 3000
		max: 3999
	}
}
ui: verbose: true
`
		writeConfig(t, dir, content)

		cfg, err := Load(LoadOptions{ConfigDirPath: dir})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.DefaultRange.Min != 1024 || cfg.DefaultRange.Max != 49151 {
			t.Errorf("default range = %d-%d, want 1024-49151",
				cfg.DefaultRange.Min, cfg.DefaultRange.Max)
		}
		if got := cfg.Ranges["app"]; got.Min != 3000 || got.Max != 3999 {
			t.Errorf("ranges[app] = %+v, want 3000-3999", got)
		}
		if !cfg.UI.Verbose {
			t.Error("ui.verbose should be true")
		}
	})

	t.Run("schema rejects out of bounds port", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "default_range: {min: 0, max: 70000}\n")

		if _, err := Load(LoadOptions{ConfigDirPath: dir}); err == nil {
			t.Fatal("Load() accepted an out-of-bounds port")
		}
	})

	t.Run("schema rejects non-integer bound", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `default_range: {min: "zero", max: 100}`+"\n")

		if _, err := Load(LoadOptions{ConfigDirPath: dir}); err == nil {
			t.Fatal("Load() accepted a non-integer bound")
		}
	})

	t.Run("explicit config path must exist", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "missing.cue")})
		if err == nil {
			t.Fatal("Load() accepted a missing explicit config file")
		}
	})
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	SetConfigDirOverride("/tmp/portkit-test-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != "/tmp/portkit-test-config" {
		t.Errorf("ConfigDir() = %q, want the override", dir)
	}
}

// writeConfig writes a config.cue with the given content into dir.
func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}
