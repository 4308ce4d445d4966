package runner

import "github.com/tuncb/dfixxer/pkg/format"

// FileOutcome captures the per-file result of a single --multi run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// ReplacementCount is the number of edits the formatter would apply (or
	// did apply, for update mode). Zero means the file was already
	// formatted.
	ReplacementCount int

	// Written is true if the file's content was rewritten on disk (update
	// mode only; check mode never writes).
	Written bool

	// Diff is the unified diff text for check mode, empty otherwise.
	Diff string

	// Warnings are non-fatal per-range problems surfaced by the formatter
	// (ParseErrorInSection, UnsupportedConstruct, RewriterDeclined).
	Warnings []format.Warning

	// Error is set if the file could not be processed at all (parse
	// failure, I/O failure, config failure for this file).
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesExcluded is the number of discovered files dropped by
	// exclude_files before any config was loaded for them.
	FilesExcluded int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesChanged is the number of files with a non-zero replacement count.
	FilesChanged int

	// FilesWritten is the number of files actually rewritten on disk.
	FilesWritten int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// ReplacementsTotal is the sum of ReplacementCount across all files.
	ReplacementsTotal int

	// WarningsTotal is the sum of warning counts across all files.
	WarningsTotal int
}

// Result is the overall runner result for a --multi run.
type Result struct {
	// Files contains the outcome for each processed file, in discovery order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasChanges reports whether any file had a non-zero replacement count.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a zero-valued Stats.
func newStats() Stats {
	return Stats{}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ReplacementsTotal += outcome.ReplacementCount
	r.Stats.WarningsTotal += len(outcome.Warnings)

	if outcome.ReplacementCount > 0 {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
