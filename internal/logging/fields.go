// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Warning fields, attached to the ParseErrorInSection/UnsupportedConstruct/
	// RewriterDeclined values a rewriter reports instead of aborting a file.
	FieldReason     = "reason"
	FieldRangeStart = "range_start"
	FieldRangeEnd   = "range_end"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
