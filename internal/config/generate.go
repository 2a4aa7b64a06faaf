// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// portkit configuration file\n\n")

	sb.WriteString("default_range: {\n")
	sb.WriteString(fmt.Sprintf("\tmin: %d\n", cfg.DefaultRange.Min))
	sb.WriteString(fmt.Sprintf("\tmax: %d\n", cfg.DefaultRange.Max))
	sb.WriteString("}\n")

	if len(cfg.Ranges) > 0 {
		names := make([]string, 0, len(cfg.Ranges))
		for name := range cfg.Ranges {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("\nranges: {\n")
		for _, name := range names {
			r := cfg.Ranges[name]
			sb.WriteString(fmt.Sprintf("\t%q: {min: %d, max: %d}\n", name, r.Min, r.Max))
		}
		sb.WriteString("}\n")
	}

	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tverbose: %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	return sb.String()
}

// Init writes the default configuration to the config directory, failing
// if a config file already exists.
func Init() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cfgPath) {
		return cfgPath, fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, nil
}
