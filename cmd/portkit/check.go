// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portkit/portkit/pkg/types"
	"github.com/portkit/portkit/pkg/validation"
)

// newCheckCommand creates the `portkit check` command.
func newCheckCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "check <value>...",
		Short: "Check whether values are valid port numbers",
		Long: `Check whether values are valid port numbers.

Each value must be the exact decimal rendering of an integer within the
bounds in effect: no signs, no leading zeros, no surrounding whitespace.
Bounds default to the configured default range (0-65535 out of the box)
and can be narrowed with --range, --min, and --max.

The exit code is 1 if any value is invalid.

Examples:
  portkit check 8080 443
  portkit check --range registered 3000
  portkit check --min 1024 80`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
	addRangeFlags(c)
	return c
}

func runCheck(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	min, max, err := boundsFromFlags(cmd)
	if err != nil {
		return err
	}
	logger.Debug("checking values", "count", len(args), "min", min, "max", max)

	invalid := 0
	for _, arg := range args {
		p, err := types.ValidatePort(validation.Root, arg, types.WithRange(min, max))
		if err != nil {
			invalid++
			var verr *validation.Error
			if errors.As(err, &verr) {
				fmt.Fprintf(stdout, "%s %s: %s\n",
					InvalidStyle.Render("✗"), PortStyle.Render(arg), verr.Reason)
			} else {
				fmt.Fprintf(stdout, "%s %s: %v\n",
					InvalidStyle.Render("✗"), PortStyle.Render(arg), err)
			}
			continue
		}
		fmt.Fprintf(stdout, "%s %s %s\n",
			ValidStyle.Render("✓"), PortStyle.Render(p.String()),
			SubtitleStyle.Render("("+portClass(p)+")"))
	}

	if invalid > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d of %d values invalid", invalid, len(args)),
		}
	}
	return nil
}
