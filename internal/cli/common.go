package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/internal/ui/pretty"
	"github.com/tuncb/dfixxer/pkg/runner"
)

// runFlags holds the flags shared by update, check, and init-config.
type runFlags struct {
	configPath string
	multi      bool
	backup     bool
}

func addConfigFlag(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a dfixxer.toml config file, bypassing discovery")
}

func addMultiFlag(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVar(&flags.multi, "multi", false, "treat arguments as globs/directories and process every match")
}

// buildRunOptions turns a command's positional arguments and shared flags
// into runner.RunOptions, expanding --multi globs along the way.
func buildRunOptions(args []string, flags runFlags, mode runner.Mode) (runner.RunOptions, error) {
	paths, err := expandPaths(args, flags.multi)
	if err != nil {
		return runner.RunOptions{}, err
	}

	return runner.RunOptions{
		Options: runner.Options{
			Paths: paths,
		},
		Mode:               mode,
		ExplicitConfigPath: flags.configPath,
		Backup:             flags.backup,
	}, nil
}

// requireSingleFile rejects a --multi-less invocation naming a directory.
func requireSingleFile(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one file argument without --multi, got %d", len(args))
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory; pass --multi to process a directory", args[0])
	}
	return nil
}

// printFileHeader writes the "Processing file: ..." banner printed once per
// file whenever more than one file is in scope.
func printFileHeader(styles *pretty.Styles, path string) {
	fmt.Fprintln(os.Stdout, styles.Dim.Render("Processing file: "+path))
}

// printDiff renders a unified diff, coloring add/remove/hunk lines.
func printDiff(styles *pretty.Styles, diff string) {
	if diff == "" {
		return
	}
	for _, line := range splitDiffLines(diff) {
		switch {
		case len(line) > 0 && line[0] == '+':
			fmt.Fprintln(os.Stdout, styles.DiffAdd.Render(line))
		case len(line) > 0 && line[0] == '-':
			fmt.Fprintln(os.Stdout, styles.DiffRemove.Render(line))
		case len(line) > 1 && line[:2] == "@@":
			fmt.Fprintln(os.Stdout, styles.DiffHunk.Render(line))
		default:
			fmt.Fprintln(os.Stdout, styles.DiffContext.Render(line))
		}
	}
}

func splitDiffLines(diff string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(diff); i++ {
		if diff[i] == '\n' {
			lines = append(lines, diff[start:i])
			start = i + 1
		}
	}
	if start < len(diff) {
		lines = append(lines, diff[start:])
	}
	return lines
}

// runContext is the background context every command runs under; the CLI
// has no cancellation source of its own.
func runContext() context.Context {
	return context.Background()
}
