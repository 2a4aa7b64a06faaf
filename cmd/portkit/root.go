// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for portkit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/portkit/portkit/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables diagnostic logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, available to all commands after
	// initRootConfig runs.
	cfg = config.DefaultConfig()

	// logger emits diagnostics to stderr; Debug level when verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "portkit",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "portkit",
		Short: "Validate and normalize IP port numbers",
		Long: TitleStyle.Render("portkit") + SubtitleStyle.Render(" - validate and normalize IP port numbers") + `

portkit checks whether values could legally serve as TCP/UDP port
numbers, against the full 16-bit space or a narrower range, and
normalizes validated values to a numeric or string form. It never
binds sockets or touches the network.

Ranges can be the built-in IANA ranges (well-known, registered,
dynamic) or named ranges declared in the config file, written in
CUE format.

` + SubtitleStyle.Render("Examples:") + `
  portkit check 8080 443            Validate port values
  portkit check --range registered 80
  portkit resolve --to number "443"
  portkit ranges                    List known port ranges
  portkit config show               Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/portkit/config.cue)")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newRangesCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newExplainCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration and applies UI settings.
func initRootConfig() {
	loaded, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}
