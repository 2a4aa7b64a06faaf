// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/portkit/portkit/internal/config"
)

// newRangesCommand creates the `portkit ranges` command.
func newRangesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "List known port ranges",
		Long: `List known port ranges.

Shows the built-in IANA ranges and any named ranges declared in the
config file. Configured names shadow built-in ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRanges(cmd)
		},
	}
}

func runRanges(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()

	fmt.Fprintln(stdout, TitleStyle.Render("Built-in ranges"))
	for _, name := range config.BuiltinRangeNames() {
		r, err := cfg.Range(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  %s  %s\n",
			PortStyle.Render(fmt.Sprintf("%-12s", name)), r)
	}

	if len(cfg.Ranges) == 0 {
		return nil
	}

	fmt.Fprintln(stdout, TitleStyle.Render("Configured ranges"))
	names := maps.Keys(cfg.Ranges)
	slices.Sort(names)
	for _, name := range names {
		r, err := cfg.Range(name)
		if err != nil {
			fmt.Fprintf(stdout, "  %s  %s\n",
				PortStyle.Render(fmt.Sprintf("%-12s", name)),
				InvalidStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintf(stdout, "  %s  %s\n",
			PortStyle.Render(fmt.Sprintf("%-12s", name)), r)
	}
	return nil
}
