package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/internal/logging"
	"github.com/tuncb/dfixxer/pkg/runner"
)

func newUpdateCommand() *cobra.Command {
	flags := runFlags{}

	cmd := &cobra.Command{
		Use:   "update <path>...",
		Short: "Reformat Pascal/Delphi files in place",
		Long: `update reformats one or more Pascal/Delphi source files in place, using an
atomic write so a crash mid-write never leaves a truncated file behind.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runUpdate(args, flags)
		},
	}

	addConfigFlag(cmd, &flags)
	addMultiFlag(cmd, &flags)
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "write a .dfixxer.bak sidecar before overwriting each file")

	return cmd
}

func runUpdate(args []string, flags runFlags) error {
	logger := logging.Default()

	opts, err := buildRunOptions(args, flags, runner.ModeUpdate)
	if err != nil {
		return err
	}

	multi := len(opts.Paths) > 1 || flags.multi
	if !flags.multi {
		if err := requireSingleFile(args); err != nil {
			return err
		}
	}

	r := runner.New()
	result, err := r.Run(runContext(), opts)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	for _, outcome := range result.Files {
		if multi {
			logger.Info("Processing file: " + outcome.Path)
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
		if outcome.Written {
			logger.Info("rewrote file", logging.FieldPath, outcome.Path, "replacements", outcome.ReplacementCount)
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("update: %d file(s) failed", result.Stats.FilesErrored)
	}

	fmt.Fprintf(os.Stdout, "%d file(s) processed, %d changed, %d replacement(s)\n",
		result.Stats.FilesProcessed, result.Stats.FilesChanged, result.Stats.ReplacementsTotal)

	return nil
}
