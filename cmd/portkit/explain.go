// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// failureNotes maps each validation failure category to a markdown note
// rendered by `portkit explain`.
var failureNotes = map[string]string{
	"type": `# Invalid type

The input is neither a number nor a string. Booleans, nulls, arrays and
objects are rejected outright: a port is always denoted by an integer or
by its decimal string.`,

	"format": `# Invalid format

The input is a string but not the exact decimal rendering of an integer.
portkit applies a strict policy, so all of these are rejected:

- letters or stray characters ( ` + "`80a`" + ` )
- empty or whitespace-only strings
- fractional text ( ` + "`80.5`" + ` )
- leading zeros ( ` + "`080`" + ` )
- explicit signs ( ` + "`+80`" + ` )
- surrounding whitespace ( ` + "` 80 `" + ` )

A bare negative like ` + "`-1`" + ` is well-formed and instead fails the
range check.`,

	"integer": `# Non-integer value

The input is numeric but has a fractional component, e.g. ` + "`80.5`" + `.
Port numbers are whole; no rounding is performed. NaN and infinities
fall in this category too.`,

	"range": `# Out of range

The parsed integer lies outside the inclusive bounds in effect. The
default bounds are 0 to 65535, the full unsigned 16-bit port space;
--range, --min and --max narrow them. Bounds are never widened beyond
what the caller supplies.`,
}

// newExplainCommand creates the `portkit explain` command.
func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <category>",
		Short: "Explain a validation failure category",
		Long: `Explain a validation failure category.

Categories: ` + strings.Join(sortedCategories(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: sortedCategories(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args[0])
		},
	}
}

func sortedCategories() []string {
	names := maps.Keys(failureNotes)
	slices.Sort(names)
	return names
}

func runExplain(cmd *cobra.Command, category string) error {
	note, ok := failureNotes[category]
	if !ok {
		return fmt.Errorf("unknown category %q: must be one of %s",
			category, strings.Join(sortedCategories(), ", "))
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(note)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
