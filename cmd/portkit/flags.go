// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/portkit/portkit/pkg/types"
)

// addRangeFlags registers the bounds flags shared by check and resolve.
func addRangeFlags(c *cobra.Command) {
	c.Flags().String("range", "", "named port range (built-in IANA name or from config)")
	c.Flags().Int("min", types.MinPort, "inclusive lower bound")
	c.Flags().Int("max", types.MaxPort, "inclusive upper bound")
}

// boundsFromFlags resolves the inclusive bounds for a command invocation.
// Precedence: explicit --min/--max, then --range <name>, then the
// configured default range.
func boundsFromFlags(cmd *cobra.Command) (min, max int, err error) {
	def, err := cfg.Default()
	if err != nil {
		return 0, 0, err
	}
	min, max = def.Min.Number(), def.Max.Number()

	if name, _ := cmd.Flags().GetString("range"); name != "" {
		named, err := cfg.Range(name)
		if err != nil {
			return 0, 0, err
		}
		min, max = named.Min.Number(), named.Max.Number()
	}

	if cmd.Flags().Changed("min") {
		min, _ = cmd.Flags().GetInt("min")
	}
	if cmd.Flags().Changed("max") {
		max, _ = cmd.Flags().GetInt("max")
	}
	return min, max, nil
}

// portClass names the IANA range a validated port falls in.
func portClass(p types.Port) string {
	switch {
	case p.IsWellKnown():
		return "well-known"
	case p.IsRegistered():
		return "registered"
	default:
		return "dynamic"
	}
}
