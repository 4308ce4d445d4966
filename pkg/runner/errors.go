package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/tuncb/dfixxer/internal/configloader"
	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/format"
	"github.com/tuncb/dfixxer/pkg/fsutil"
)

// Sentinel errors for run-level categorization, grounded on
// pkg/lint/pipeline.go's ErrFileNotFound/ErrPermissionDenied/ErrParseFailure/
// ErrWriteFailure set, extended with the two edit-model invariant violations
// pkg/fix/validate.go can raise.
var (
	// ErrFileNotFound indicates a target file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error reading or writing a file.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the Pascal parser could not tokenize or
	// build a syntax tree for the file at all (as opposed to a recoverable
	// per-section ParseErrorInSection warning).
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates the formatted output could not be written back.
	ErrWriteFailure = errors.New("write failure")

	// ErrOverlappingEdits indicates the orchestrator produced overlapping
	// edits, a programmer error caught by fix.ValidateEdits.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrBoundaryMisaligned indicates an edit offset does not fall on a
	// UTF-8 char boundary of the source.
	ErrBoundaryMisaligned = errors.New("edit boundary misaligned")

	// ErrConfigParse indicates a dfixxer.toml document could not be parsed.
	ErrConfigParse = errors.New("config parse failure")
)

// categorizeError wraps err with the sentinel that best classifies it, using
// errors.Is against the lower-layer sentinels rather than string matching,
// exactly as pkg/lint/pipeline.go's categorizeError does.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	if errors.Is(err, format.ErrParse) {
		return fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	var conflict *fix.ConflictError
	if errors.As(err, &conflict) {
		return fmt.Errorf("%w: %w", ErrOverlappingEdits, err)
	}
	var validation *fix.ValidationError
	if errors.As(err, &validation) {
		return fmt.Errorf("%w: %w", ErrBoundaryMisaligned, err)
	}

	return err
}

// categorizeConfigError wraps a configuration-loading error with
// ErrConfigParse when it stems from a malformed TOML document, distinct
// from a plain file-not-found (built-in defaults apply in that case, so
// configloader.Load never surfaces ErrFileNotFound for a missing config).
func categorizeConfigError(err error) error {
	if err == nil {
		return nil
	}
	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrConfigParse, err)
}

// IsRunnerError reports whether err carries one of this package's sentinel
// classifications, for CLI-layer exit-code decisions.
func IsRunnerError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure) ||
		errors.Is(err, ErrOverlappingEdits) ||
		errors.Is(err, ErrBoundaryMisaligned) ||
		errors.Is(err, ErrConfigParse)
}
