package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tuncb/dfixxer/internal/configloader"
	"github.com/tuncb/dfixxer/pkg/config"
	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/format"
	"github.com/tuncb/dfixxer/pkg/fsutil"
)

// Mode selects what a run does with each file's computed edits.
type Mode int

const (
	// ModeCheck computes edits and a diff but never writes.
	ModeCheck Mode = iota
	// ModeUpdate writes the formatted output back to disk.
	ModeUpdate
)

// RunOptions extends discovery Options with the behavior of a --multi run.
type RunOptions struct {
	Options

	// Mode selects check or update behavior.
	Mode Mode

	// ExplicitConfigPath is an explicit --config path, skipping discovery.
	ExplicitConfigPath string

	// CLIConfig carries CLI-flag overrides applied after any discovered or
	// redirected config file.
	CLIConfig *config.Config

	// Backup requests a .dfixxer.bak sidecar before an update overwrites a file.
	Backup bool
}

// Runner drives the core formatting pipeline across every discovered file,
// sequentially and cooperatively rather than through a worker pool, so
// results and stats accumulate in a deterministic, discovery order.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths, excludes any matching the run-level
// config's exclude_files, then formats each remaining file in turn,
// resolving its own (possibly redirected) configuration along the way.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	files, err := Discover(ctx, opts.Options)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files)), Stats: newStats()}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	files, excludedCount, err := excludeConfigured(ctx, opts, files)
	if err != nil {
		return nil, err
	}
	result.Stats.FilesExcluded = excludedCount

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		outcome := r.processFile(ctx, path, opts)
		result.accumulate(outcome)
	}

	return result, nil
}

// excludeConfigured drops files matching the run-level config's
// exclude_files before any per-file config is loaded, per the discovery
// rule that exclude_files applies to the whole --multi run up front.
func excludeConfigured(ctx context.Context, opts RunOptions, files []string) ([]string, int, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		TargetPath:   workDir + string(filepath.Separator),
		ExplicitPath: opts.ExplicitConfigPath,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("load run-level config: %w", categorizeConfigError(err))
	}

	if len(loaded.Config.ExcludeFiles) == 0 {
		return files, 0, nil
	}

	baseDir := workDir
	if loaded.LoadedFrom != "" {
		baseDir = filepath.Dir(loaded.LoadedFrom)
	}

	kept := make([]string, 0, len(files))
	excluded := 0
	for _, path := range files {
		if configloader.IsExcluded(baseDir, path, loaded.Config.ExcludeFiles) {
			excluded++
			continue
		}
		kept = append(kept, path)
	}
	return kept, excluded, nil
}

// processFile resolves configuration and runs the formatter for a single file.
func (r *Runner) processFile(ctx context.Context, path string, opts RunOptions) FileOutcome {
	outcome := FileOutcome{Path: path}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		TargetPath:   path,
		ExplicitPath: opts.ExplicitConfigPath,
		CLIConfig:    opts.CLIConfig,
	})
	if err != nil {
		outcome.Error = fmt.Errorf("load config for %s: %w", path, categorizeConfigError(err))
		return outcome
	}

	content, err := os.ReadFile(path) //nolint:gosec // path comes from discovery, not untrusted input.
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, categorizeError(err))
		return outcome
	}

	res, err := format.Process(ctx, path, content, loaded.Config.ToOptions())
	if err != nil {
		outcome.Error = fmt.Errorf("process %s: %w", path, categorizeError(err))
		return outcome
	}

	outcome.ReplacementCount = res.ReplacementCount
	outcome.Warnings = res.Warnings

	switch opts.Mode {
	case ModeCheck:
		if res.ReplacementCount > 0 {
			outcome.Diff = fix.GenerateDiff(path, content, res.Output).FullString()
		}
	case ModeUpdate:
		if res.ReplacementCount > 0 {
			if opts.Backup {
				if _, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{
					Enabled: true,
					Mode:    fsutil.BackupModeSidecar,
				}); err != nil {
					outcome.Error = fmt.Errorf("backup %s: %w", path, err)
					return outcome
				}
			}
			info, statErr := os.Stat(path)
			mode := fsutil.DefaultFileMode
			if statErr == nil {
				mode = info.Mode()
			}
			if err := fsutil.WriteAtomic(ctx, path, res.Output, mode); err != nil {
				outcome.Error = fmt.Errorf("write %s: %w", path, err)
				return outcome
			}
			outcome.Written = true
		}
	}

	return outcome
}
