package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/pkg/pascal"
	pascalparser "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

func newParseCommand() *cobra.Command {
	var multi bool

	cmd := &cobra.Command{
		Use:   "parse <path>...",
		Short: "Print a flat listing of top-level node kinds and byte ranges",
		Long: `parse tokenizes and parses the given file(s) and prints, for each
top-level node, its kind and byte range. It is a debugging aid and is not
used by update or check.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args, multi)
		},
	}

	cmd.Flags().BoolVar(&multi, "multi", false, "treat arguments as globs/directories and process every match")
	cmd.Flags().String("config", "", "accepted for CLI parity; parse does not use configuration")

	return cmd
}

func runParse(args []string, multi bool) error {
	paths, err := expandPaths(args, multi)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if len(paths) > 1 {
			fmt.Fprintf(os.Stdout, "Processing file: %s\n", path)
		}
		if err := parseOneFile(path); err != nil {
			return err
		}
	}
	return nil
}

func parseOneFile(path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from CLI arguments.
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	snapshot, err := pascalparser.Parse(runContext(), path, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	printTopLevelNodes(snapshot)
	return nil
}

func printTopLevelNodes(snapshot *pascal.FileSnapshot) {
	if snapshot.Root == nil {
		return
	}
	for child := snapshot.Root.FirstChild; child != nil; child = child.Next {
		r := child.SourceRange()
		fmt.Fprintf(os.Stdout, "Node kind: %s | Range: [%d, %d)\n", child.Kind, r.StartOffset, r.EndOffset)
	}
}
