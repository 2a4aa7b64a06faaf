// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portkit/portkit/pkg/types"
	"github.com/portkit/portkit/pkg/validation"
)

// newResolveCommand creates the `portkit resolve` command.
func newResolveCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "resolve <value>...",
		Short: "Validate values and print them in a definite representation",
		Long: `Validate values and print them in a definite representation.

Validated ports keep the representation they arrived in; resolve
normalizes them. --to number prints the integer value, --to string the
decimal string (for argv input the two coincide; the distinction matters
for callers embedding portkit as a library, and this command mirrors
those resolvers).

Examples:
  portkit resolve 443 8080
  portkit resolve --to number --range well-known 80`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args)
		},
	}
	addRangeFlags(c)
	c.Flags().String("to", "string", "target representation: number or string")
	return c
}

func runResolve(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	target, _ := cmd.Flags().GetString("to")
	if target != "number" && target != "string" {
		return fmt.Errorf("unknown representation %q: must be number or string", target)
	}

	min, max, err := boundsFromFlags(cmd)
	if err != nil {
		return err
	}

	for _, arg := range args {
		p, err := types.ValidatePort(validation.Root, arg, types.WithRange(min, max))
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}
		if target == "number" {
			fmt.Fprintf(stdout, "%d\n", p.Number())
		} else {
			fmt.Fprintln(stdout, p.String())
		}
	}
	return nil
}
