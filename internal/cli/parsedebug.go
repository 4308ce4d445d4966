package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/pkg/format"
	"github.com/tuncb/dfixxer/pkg/pascal"
	pascalparser "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

func newParseDebugCommand() *cobra.Command {
	var multi bool

	cmd := &cobra.Command{
		Use:   "parse-debug <path>...",
		Short: "Print the full token stream and computed spacing hints",
		Long: `parse-debug does everything parse does, then additionally prints the
full classified token stream and the SpacingContext hint sets the text
spacing transformer would consult for this file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParseDebug(args, multi)
		},
	}

	cmd.Flags().BoolVar(&multi, "multi", false, "treat arguments as globs/directories and process every match")
	cmd.Flags().String("config", "", "accepted for CLI parity; parse-debug does not use configuration")

	return cmd
}

func runParseDebug(args []string, multi bool) error {
	paths, err := expandPaths(args, multi)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if len(paths) > 1 {
			fmt.Fprintf(os.Stdout, "Processing file: %s\n", path)
		}
		if err := parseDebugOneFile(path); err != nil {
			return err
		}
	}
	return nil
}

func parseDebugOneFile(path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from CLI arguments.
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	snapshot, err := pascalparser.Parse(runContext(), path, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	printTopLevelNodes(snapshot)
	printTokenStream(snapshot)
	printSpacingContext(format.CollectSpacingContext(snapshot))
	return nil
}

func printTokenStream(snapshot *pascal.FileSnapshot) {
	fmt.Fprintln(os.Stdout, "Tokens:")
	for i, tok := range snapshot.Tokens {
		fmt.Fprintf(os.Stdout, "  [%d] %s [%d, %d) %q\n",
			i, tok.Kind, tok.StartOffset, tok.EndOffset, tok.Text(snapshot.Content))
	}
}

func printSpacingContext(ctx *format.SpacingContext) {
	fmt.Fprintln(os.Stdout, "SpacingContext:")
	printPositionSet("  generic_angle_positions", ctx.GenericAnglePositions)
	printPositionSet("  unary_sign_positions", ctx.UnarySignPositions)
	printPositionSet("  exponent_sign_positions", ctx.ExponentSignPositions)
	printPositionSet("  binary_operator_positions", ctx.BinaryOperatorPositions)
	printPositionSet("  assignment_positions", ctx.AssignmentPositions)
	printPositionSet("  declaration_equals_positions", ctx.DeclarationEqualsPositions)

	fmt.Fprintln(os.Stdout, "  error_ranges:")
	for _, r := range ctx.ErrorRanges {
		fmt.Fprintf(os.Stdout, "    [%d, %d)\n", r.StartOffset, r.EndOffset)
	}
}

func printPositionSet(label string, positions map[int]struct{}) {
	sorted := make([]int, 0, len(positions))
	for pos := range positions {
		sorted = append(sorted, pos)
	}
	sort.Ints(sorted)
	fmt.Fprintf(os.Stdout, "%s: %v\n", label, sorted)
}
