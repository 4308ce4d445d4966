package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/tuncb/dfixxer/pkg/fix"
	pascallex "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

// ErrParse marks a whole-file parse failure: the tokenizer or parser could
// not establish enough structure to build a syntax tree at all, as opposed
// to a recoverable per-section ERROR node. Fatal for the file, per §7.
var ErrParse = errors.New("parse failure")

// Result is the outcome of running Process over one file's content.
type Result struct {
	Output           []byte
	ReplacementCount int
	Warnings         []Warning
}

// Process parses content, runs every enabled rewriter, merges the resulting
// edits with the identity gaps between them, passes the gaps through the
// text spacing transformer, and applies the final edit set. Rewriter edits
// are marked final and never revisited by the spacing pass; only the
// untouched stretches of source between them are.
func Process(ctx context.Context, path string, content []byte, opts Options) (Result, error) {
	snapshot, err := pascallex.Parse(ctx, path, content)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	var edits []fix.TextEdit
	var warnings []Warning
	t := opts.Transformations

	if t.UnitProgram {
		headerEdits, headerWarnings := GenerateHeaderEdits(snapshot, opts)
		edits = append(edits, headerEdits...)
		warnings = append(warnings, headerWarnings...)
	}
	if t.SingleKeywordSections {
		keywordEdits, keywordWarnings := GenerateSectionKeywordEdits(snapshot, opts)
		edits = append(edits, keywordEdits...)
		warnings = append(warnings, keywordWarnings...)
	}
	if t.ProcedureSection {
		procEdits, procWarnings := GenerateProcedureEdits(snapshot, opts)
		edits = append(edits, procEdits...)
		warnings = append(warnings, procWarnings...)
	}
	if t.InheritedCalls {
		inheritedEdits, inheritedWarnings := GenerateInheritedEdits(snapshot, opts)
		edits = append(edits, inheritedEdits...)
		warnings = append(warnings, inheritedWarnings...)
	}
	if t.UsesSection {
		usesEdits, usesWarnings := GenerateUsesEdits(snapshot, opts)
		edits = append(edits, usesEdits...)
		warnings = append(warnings, usesWarnings...)
	}

	// Overlapping or boundary-misaligned edits are a programmer error in a
	// rewriter, not a per-range condition a file can route around: fail the
	// file rather than silently dropping one side of the conflict.
	prepared, err := fix.PrepareEdits(edits, content)
	if err != nil {
		return Result{}, fmt.Errorf("prepare edits for %s: %w", path, err)
	}

	filled := fix.FillGaps(content, prepared)

	var spacingCtx *SpacingContext
	if t.Text {
		spacingCtx = CollectSpacingContext(snapshot)
	}

	replacementCount := 0
	for i, e := range filled {
		if !e.IsIdentity {
			replacementCount++
			continue
		}
		if spacingCtx == nil {
			continue
		}

		spaced := TransformSpacing(content, e.StartOffset, e.EndOffset, spacingCtx, opts)
		if !bytes.Equal(spaced, content[e.StartOffset:e.EndOffset]) {
			filled[i].NewText = string(spaced)
			filled[i].IsIdentity = false
			replacementCount++
		}
	}

	output := fix.ApplyEdits(content, filled)
	return Result{Output: output, ReplacementCount: replacementCount, Warnings: warnings}, nil
}
