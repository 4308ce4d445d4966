// Package cli provides the Cobra command structure for dfixxer, the
// Delphi/Pascal source formatter.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root dfixxer command with all subcommands:
// update, check, init-config, parse, parse-debug, version.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var logLevel string
	var color string

	rootCmd := &cobra.Command{
		Use:   "dfixxer",
		Short: "A source formatter for Delphi/Pascal files",
		Long: `dfixxer reformats Delphi/Pascal source files in place, or previews the
change as a unified diff, without disturbing byte ranges it did not touch.

It reformats uses sections (sort, namespace qualification, comma layout),
normalizes spacing around operators, punctuation, and comments outside of
strings and comments, and rewrites a narrow set of structural sections:
unit/program headers, single-keyword section headers, and procedure and
function declarations.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel != "" {
				logging.SetLevel(logLevel)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "",
		"log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInitConfigCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newParseDebugCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// colorModeFlag returns the value of the root command's --color flag, or
// "auto" if unset (e.g. help formatting fell through to a subcommand's own
// help invocation before the flag was parsed).
func colorModeFlag(cmd *cobra.Command) string {
	if f := cmd.Root().PersistentFlags().Lookup("color"); f != nil {
		return f.Value.String()
	}
	return "auto"
}
