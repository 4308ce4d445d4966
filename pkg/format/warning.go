package format

import "github.com/tuncb/dfixxer/pkg/fix"

// Reason classifies why a rewriter reported a Warning instead of, or in
// addition to, an edit.
type Reason string

const (
	// ParseErrorInSection means a rewriter found its target node (or an
	// ancestor) inside a parser-error range. The node is left untouched.
	ParseErrorInSection Reason = "ParseErrorInSection"

	// UnsupportedConstruct means the uses-section rewriter found
	// preprocessor directives or interleaved comments at the same level as
	// unit names, and skipped the whole section.
	UnsupportedConstruct Reason = "UnsupportedConstruct"

	// RewriterDeclined means a rewriter other than uses found a node shape
	// it doesn't recognize and emitted no edit for it.
	RewriterDeclined Reason = "RewriterDeclined"
)

// Warning is a non-fatal, per-range problem reported by a rewriter, carrying
// enough structure (a byte range and a typed reason) for the caller to log
// or aggregate it without parsing a message string.
type Warning struct {
	Range  fix.Range
	Reason Reason
}

// rangeOf builds the fix.Range a Warning carries from a start and end byte
// offset.
func rangeOf(start, end int) fix.Range {
	return fix.Range{StartOffset: start, EndOffset: end}
}
