// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/portkit/portkit/internal/config"
)

func executeConfigShow(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newConfigCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(append([]string{"show"}, args...))
	err := c.Execute()
	return out.String(), err
}

func TestConfigShow(t *testing.T) {
	// Not parallel: subtests swap the package-level cfg var.

	origCfg := cfg
	t.Cleanup(func() { cfg = origCfg })

	cfg = config.DefaultConfig()
	cfg.Ranges["app"] = config.RangeConfig{Min: 3000, Max: 3999}

	t.Run("cue output", func(t *testing.T) {
		out, err := executeConfigShow(t)
		if err != nil {
			t.Fatalf("config show error: %v", err)
		}
		if !strings.Contains(out, "default_range:") {
			t.Errorf("CUE output missing default_range:\n%s", out)
		}
		if !strings.Contains(out, `"app": {min: 3000, max: 3999}`) {
			t.Errorf("CUE output missing configured range:\n%s", out)
		}
	})

	t.Run("toml output round-trips", func(t *testing.T) {
		out, err := executeConfigShow(t, "--format", "toml")
		if err != nil {
			t.Fatalf("config show --format toml error: %v", err)
		}

		var decoded config.Config
		if err := toml.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("TOML output does not parse: %v\n%s", err, out)
		}
		if decoded.DefaultRange.Max != 65535 {
			t.Errorf("decoded default_range.max = %d, want 65535", decoded.DefaultRange.Max)
		}
		if got := decoded.Ranges["app"]; got.Min != 3000 || got.Max != 3999 {
			t.Errorf("decoded ranges.app = %+v, want 3000-3999", got)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := executeConfigShow(t, "--format", "yaml"); err == nil {
			t.Fatal("config show --format yaml should fail")
		}
	})
}

func TestRangesCommand(t *testing.T) {
	// Not parallel: swaps the package-level cfg var.

	origCfg := cfg
	t.Cleanup(func() { cfg = origCfg })

	cfg = config.DefaultConfig()
	cfg.Ranges["app"] = config.RangeConfig{Min: 3000, Max: 3999}

	c := newRangesCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	if err := c.Execute(); err != nil {
		t.Fatalf("ranges error: %v", err)
	}

	for _, want := range []string{"well-known", "0-1023", "registered", "1024-49151", "app", "3000-3999"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("ranges output missing %q:\n%s", want, out.String())
		}
	}
}

func TestExplainCommand(t *testing.T) {
	t.Run("categories are stable", func(t *testing.T) {
		got := sortedCategories()
		want := []string{"format", "integer", "range", "type"}
		if len(got) != len(want) {
			t.Fatalf("categories = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		c := newExplainCommand()
		var out bytes.Buffer
		c.SetOut(&out)
		c.SetErr(&out)
		c.SetArgs([]string{"bogus"})
		if err := c.Execute(); err == nil {
			t.Fatal("explain bogus should fail")
		}
	})
}
