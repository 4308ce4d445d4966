package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/internal/logging"
	"github.com/tuncb/dfixxer/internal/ui/pretty"
	"github.com/tuncb/dfixxer/pkg/runner"
)

func newCheckCommand() *cobra.Command {
	flags := runFlags{}

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Report the changes update would make, without writing",
		Long: `check computes the same edits update would apply and prints them as a
unified diff, but never writes to disk. Its exit code is the total number of
replacements that would be made across every processed file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addConfigFlag(cmd, &flags)
	addMultiFlag(cmd, &flags)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags runFlags) error {
	logger := logging.Default()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorModeFlag(cmd), os.Stdout))

	opts, err := buildRunOptions(args, flags, runner.ModeCheck)
	if err != nil {
		return err
	}

	if !flags.multi {
		if err := requireSingleFile(args); err != nil {
			return err
		}
	}
	multi := len(opts.Paths) > 1 || flags.multi

	r := runner.New()
	result, err := r.Run(runContext(), opts)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	separator := styles.Dim.Render(strings.Repeat("-", pretty.TerminalWidth(os.Stdout)))

	for i, outcome := range result.Files {
		if multi {
			if i > 0 {
				fmt.Fprintln(os.Stdout, separator)
			}
			printFileHeader(styles, outcome.Path)
		}
		if outcome.Error != nil {
			logger.Error("failed to process file", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
			continue
		}
		for _, warning := range outcome.Warnings {
			logger.Warn("rewriter reported a warning",
				logging.FieldPath, outcome.Path,
				logging.FieldReason, warning.Reason,
				logging.FieldRangeStart, warning.Range.StartOffset,
				logging.FieldRangeEnd, warning.Range.EndOffset,
			)
		}
		printDiff(styles, outcome.Diff)
	}

	if result.HasErrors() {
		return fmt.Errorf("check: %d file(s) failed", result.Stats.FilesErrored)
	}

	summary := fmt.Sprintf("%d file(s) checked, %d would change, %d replacement(s)",
		result.Stats.FilesProcessed, result.Stats.FilesChanged, result.Stats.ReplacementsTotal)
	if result.Stats.ReplacementsTotal > 0 {
		fmt.Fprintln(os.Stdout, styles.Warning.Render(summary))
	} else {
		fmt.Fprintln(os.Stdout, styles.Success.Render(summary))
	}

	// check's exit code carries the replacement count, not just success/
	// failure, so it is reported directly rather than through cobra's
	// error-based exit path.
	if code := CheckExitCode(result); code != ExitSuccess {
		os.Exit(code)
	}
	return nil
}
