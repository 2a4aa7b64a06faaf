// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/portkit/portkit/internal/config"
)

// newConfigCommand creates the `portkit config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage portkit configuration",
		Long: `Manage portkit configuration.

Configuration is stored in:
  - Linux: ~/.config/portkit/config.cue
  - macOS: ~/Library/Application Support/portkit/config.cue
  - Windows: %APPDATA%\portkit\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return showConfig(cmd, format)
		},
	}
	showCmd.Flags().String("format", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	return cfgCmd
}

// showConfig renders the loaded configuration in the requested format.
func showConfig(cmd *cobra.Command, format string) error {
	stdout := cmd.OutOrStdout()

	switch format {
	case "cue":
		fmt.Fprint(stdout, config.GenerateCUE(cfg))
	case "toml":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config as TOML: %w", err)
		}
		fmt.Fprint(stdout, string(out))
	default:
		return fmt.Errorf("unknown format %q: must be cue or toml", format)
	}
	return nil
}
