// Package fix provides text edit types and application logic for auto-fixing.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string

	// IsIdentity marks an edit whose NewText was not produced by a
	// rewriter; the original slice [StartOffset,EndOffset) stands in for
	// it until the spacing pass decides whether to rewrite it.
	IsIdentity bool

	// IsFinal forbids any further mutation of NewText by later passes.
	IsFinal bool
}

// OriginalText returns the source slice this edit replaces.
func (e TextEdit) OriginalText(source []byte) []byte {
	return source[e.StartOffset:e.EndOffset]
}

// EditBuilder accumulates text edits for a file. Rewriters that produce a
// single edit per matched node use it in place of a TextEdit literal, so the
// accumulation and the IsFinal marking live in one place.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) *EditBuilder {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
	return b
}

// ReplaceRangeFinal adds an edit like ReplaceRange, marked IsFinal so no
// later pass may rewrite it further.
func (b *EditBuilder) ReplaceRangeFinal(start, end int, newText string) *EditBuilder {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
		IsFinal:     true,
	})
	return b
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) *EditBuilder {
	return b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) *EditBuilder {
	return b.ReplaceRange(start, end, "")
}

// Build returns the accumulated edits.
func (b *EditBuilder) Build() []TextEdit {
	return b.Edits
}

// FillGaps sorts edits by start offset and inserts an identity edit for
// every uncovered gap, including a single whole-file identity edit when
// edits is empty. The result covers [0, len(content)) with no gaps.
func FillGaps(content []byte, edits []TextEdit) []TextEdit {
	if len(edits) == 0 {
		if len(content) == 0 {
			return nil
		}
		return []TextEdit{{StartOffset: 0, EndOffset: len(content), IsIdentity: true}}
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	filled := make([]TextEdit, 0, len(sorted)*2+1)
	lastEnd := 0
	for _, e := range sorted {
		if lastEnd < e.StartOffset {
			filled = append(filled, TextEdit{StartOffset: lastEnd, EndOffset: e.StartOffset, IsIdentity: true})
		}
		filled = append(filled, e)
		lastEnd = e.EndOffset
	}
	if lastEnd < len(content) {
		filled = append(filled, TextEdit{StartOffset: lastEnd, EndOffset: len(content), IsIdentity: true})
	}

	return filled
}
