package format

import (
	"strings"

	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/pascal"
)

// GenerateHeaderEdits normalizes a unit/program/library header to
// "<keyword> <Name>;" with the original keyword casing lowercased and
// exactly one space before the name.
func GenerateHeaderEdits(snapshot *pascal.FileSnapshot, opts Options) ([]fix.TextEdit, []Warning) {
	var edits []fix.TextEdit
	var warnings []Warning

	headers := append(pascal.FindByKind(snapshot.Root, pascal.NodeUnit), pascal.FindByKind(snapshot.Root, pascal.NodeProgram)...)
	for _, node := range headers {
		r := node.SourceRange()
		if snapshot.InErrorRange(r.StartOffset) {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: ParseErrorInSection})
			continue
		}

		keyword := strings.ToLower(string(snapshot.Tokens[node.FirstToken].Text(snapshot.Content)))
		nameNode := node.FirstChild
		if nameNode == nil || nameNode.Kind != pascal.NodeIdentifier {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: RewriterDeclined})
			continue
		}
		name := string(nameNode.Text())

		newText := keyword + " " + name + ";"
		original := string(snapshot.Content[r.StartOffset:r.EndOffset])
		if newText == original {
			continue
		}

		edits = append(edits, fix.TextEdit{
			StartOffset: r.StartOffset,
			EndOffset:   r.EndOffset,
			NewText:     newText,
			IsFinal:     true,
		})
	}

	return edits, warnings
}

// GenerateSectionKeywordEdits lowercases every single-keyword section header
// (interface, implementation, var, begin, end, ...) and ensures it starts its
// own line: code preceding it on the same physical line pushes the keyword
// down, and code following it on the same physical line is itself pushed
// down onto the next line.
func GenerateSectionKeywordEdits(snapshot *pascal.FileSnapshot, opts Options) ([]fix.TextEdit, []Warning) {
	var edits []fix.TextEdit
	var warnings []Warning
	nl := resolveNewline(snapshot, opts)

	keywordNodes := pascal.FindAll(snapshot.Root, func(n *pascal.Node) bool { return n.Kind.IsSectionKeyword() })
	keywordStarts := make(map[int]bool, len(keywordNodes))
	for _, n := range keywordNodes {
		keywordStarts[n.FirstToken] = true
	}

	for _, node := range keywordNodes {
		r := node.SourceRange()
		if snapshot.InErrorRange(r.StartOffset) {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: ParseErrorInSection})
			continue
		}

		tok := snapshot.Tokens[node.FirstToken]
		lowered := strings.ToLower(string(tok.Text(snapshot.Content)))

		// A following keyword that is itself a section-keyword node already
		// gets its own preceding-line edit that inserts the newline; adding
		// a second one here would double it up.
		nextIdx, followsOwnLine := followingLineState(snapshot.Tokens, node.LastToken)
		if !followsOwnLine && keywordStarts[nextIdx] {
			followsOwnLine = true
		}

		prevEnd, ownLine := precedingLineState(snapshot.Tokens, node.FirstToken)
		if ownLine {
			if lowered != string(tok.Text(snapshot.Content)) {
				edits = append(edits, fix.TextEdit{
					StartOffset: r.StartOffset,
					EndOffset:   r.EndOffset,
					NewText:     lowered,
					IsFinal:     true,
				})
			}
			if !followsOwnLine {
				edits = append(edits, fix.TextEdit{
					StartOffset: r.EndOffset,
					EndOffset:   r.EndOffset,
					NewText:     nl,
					IsFinal:     true,
				})
			}
			continue
		}

		indent := ""
		if isNestedBlockKeyword(node) {
			indent = opts.Indentation
		}

		edits = append(edits, fix.TextEdit{
			StartOffset: prevEnd,
			EndOffset:   r.EndOffset,
			NewText:     nl + indent + lowered,
			IsFinal:     true,
		})
		if !followsOwnLine {
			edits = append(edits, fix.TextEdit{
				StartOffset: r.EndOffset,
				EndOffset:   r.EndOffset,
				NewText:     nl,
				IsFinal:     true,
			})
		}
	}

	return edits, warnings
}

// precedingLineState scans backward from tokenIdx over horizontal whitespace
// only, reporting the byte offset just past the previous significant token
// (or newline/start-of-file) and whether tokenIdx already starts its own
// line.
func precedingLineState(tokens []pascal.Token, tokenIdx int) (prevEnd int, ownLine bool) {
	i := tokenIdx - 1
	for i >= 0 && tokens[i].Kind == pascal.TokWhitespace {
		i--
	}
	if i < 0 {
		return 0, true
	}
	if tokens[i].Kind == pascal.TokNewline {
		return tokens[i].EndOffset, true
	}
	return tokens[i].EndOffset, false
}

// followingLineState scans forward from tokenIdx over horizontal whitespace
// only, reporting the index of the next significant token and whether a
// newline or end of input follows immediately, as opposed to more code
// sharing the keyword's line.
func followingLineState(tokens []pascal.Token, tokenIdx int) (nextIdx int, ownLine bool) {
	i := tokenIdx + 1
	for i < len(tokens) && tokens[i].Kind == pascal.TokWhitespace {
		i++
	}
	if i >= len(tokens) {
		return i, true
	}
	return i, tokens[i].Kind == pascal.TokNewline
}

// isNestedBlockKeyword reports whether a begin/end keyword belongs to a
// routine body rather than the unit/program's top-level block, so the
// inserted line gets one indent level.
func isNestedBlockKeyword(n *pascal.Node) bool {
	if n.Kind != pascal.NodeBeginKeyword && n.Kind != pascal.NodeEndKeyword {
		return false
	}
	return n.Parent != nil && n.Parent.Kind != pascal.NodeFile
}
