package format

import (
	"sort"
	"strings"

	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/pascal"
)

// usesUnit is one canonicalized entry of a uses list, carrying enough of its
// original name to compute a stable sort key.
type usesUnit struct {
	rawName    string
	canonical  string
	priority   int

	// trailingComment is the legal "// ..." comment following this unit's
	// separator on the same source line, re-emitted after the unit in the
	// rewritten section. Empty when the unit carries no such comment.
	trailingComment string
}

// GenerateUsesEdits rewrites every uses clause in snapshot into the
// configured layout: dotted names canonicalized through NameRewrites,
// ordered by priority prefix then case-insensitively by name, each carrying
// forward a legal trailing line comment. A uses clause that interleaves a
// comment on its own line, a block comment, or a preprocessor directive among
// its unit names is left untouched (the layout can't preserve those), and
// reported as a warning instead of an edit.
func GenerateUsesEdits(snapshot *pascal.FileSnapshot, opts Options) ([]fix.TextEdit, []Warning) {
	var edits []fix.TextEdit
	var warnings []Warning

	for _, node := range pascal.FindByKind(snapshot.Root, pascal.NodeUses) {
		r := node.SourceRange()

		if snapshot.InErrorRange(r.StartOffset) {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: ParseErrorInSection})
			continue
		}

		units, interleaved := classifyUsesChildren(node, snapshot)
		if interleaved {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: UnsupportedConstruct})
			continue
		}
		if len(units) == 0 {
			continue
		}

		units = canonicalizeAndSortUnits(units, opts.UsesSection)

		newText := renderUsesSection(units, opts, resolveNewline(snapshot, opts))
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

// classifyUsesChildren walks a uses node's children in source order,
// collecting one usesUnit per NodeModule and attaching a legal trailing line
// comment to the unit it follows. interleaved is true when a comment or
// directive cannot be attributed to exactly one preceding unit this way
// (a leading comment, a block comment, or a comment on its own line), in
// which case the caller must decline the whole section.
func classifyUsesChildren(node *pascal.Node, snapshot *pascal.FileSnapshot) (units []usesUnit, interleaved bool) {
	for c := node.FirstChild; c != nil; c = c.Next {
		switch c.Kind {
		case pascal.NodeModule:
			units = append(units, usesUnit{rawName: string(c.Text())})
		case pascal.NodePreprocessor:
			interleaved = true
		case pascal.NodeComment:
			if len(units) == 0 || !isTrailingLineComment(c, snapshot) {
				interleaved = true
				continue
			}
			last := &units[len(units)-1]
			if last.trailingComment != "" {
				interleaved = true
				continue
			}
			last.trailingComment = strings.TrimSpace(string(c.Text()))
		}
	}
	return units, interleaved
}

// isTrailingLineComment reports whether comment is a "//" comment whose only
// preceding sibling is the unit it trails, with nothing but a comma and/or
// whitespace between that unit's last token and the comment itself (i.e. it
// shares the unit's source line rather than sitting on its own).
func isTrailingLineComment(comment *pascal.Node, snapshot *pascal.FileSnapshot) bool {
	if comment.FirstToken < 0 || comment.FirstToken >= len(snapshot.Tokens) {
		return false
	}
	if snapshot.Tokens[comment.FirstToken].Kind != pascal.TokLineComment {
		return false
	}

	prev := comment.Prev
	if prev == nil || prev.Kind != pascal.NodeModule {
		return false
	}

	for i := prev.LastToken + 1; i < comment.FirstToken; i++ {
		switch snapshot.Tokens[i].Kind {
		case pascal.TokComma, pascal.TokWhitespace:
			continue
		default:
			return false
		}
	}
	return true
}

func canonicalizeAndSortUnits(units []usesUnit, opts UsesSectionOptions) []usesUnit {
	for i := range units {
		units[i].canonical = canonicalUnitName(units[i].rawName, opts.NameRewrites)
		units[i].priority = priorityOf(units[i].canonical, opts.PriorityPrefixes)
	}

	sort.SliceStable(units, func(i, j int) bool {
		if units[i].priority != units[j].priority {
			return units[i].priority < units[j].priority
		}
		return strings.ToLower(units[i].canonical) < strings.ToLower(units[j].canonical)
	})

	return units
}

// canonicalUnitName rewrites a short unit name to its fully-qualified form
// via rewrites, matching the whole name against the keys case-insensitively.
// A name that already carries a dot is assumed already qualified and is
// returned unchanged, so dotted keys in rewrites never match.
func canonicalUnitName(raw string, rewrites map[string]string) string {
	if strings.Contains(raw, ".") {
		return raw
	}
	for short, prefix := range rewrites {
		if strings.EqualFold(short, raw) {
			return prefix + "." + raw
		}
	}
	return raw
}

// priorityOf returns the index of the first prefix in prefixes such that
// canonical equals that prefix or begins with "prefix.", or len(prefixes)
// when nothing matches, so unmatched units always sort after matched ones.
func priorityOf(canonical string, prefixes []string) int {
	lower := strings.ToLower(canonical)
	for i, p := range prefixes {
		lp := strings.ToLower(p)
		if lower == lp || strings.HasPrefix(lower, lp+".") {
			return i
		}
	}
	return len(prefixes)
}

// overlayLeadingComma overwrites the first two characters of indent with
// ", " so a continuation unit's name still lands on indent's column instead
// of being pushed two characters further right. Indents shorter than two
// characters fall back to plain padding, since there is nothing to overwrite.
func overlayLeadingComma(indent string) string {
	runes := []rune(indent)
	if len(runes) < 2 {
		return indent + ", "
	}
	return ", " + string(runes[2:])
}

func renderUsesSection(units []usesUnit, opts Options, nl string) string {
	indent := opts.Indentation
	var b strings.Builder
	b.WriteString("uses")
	b.WriteString(nl)

	switch opts.UsesSection.Style {
	case StyleCommaAtBeginning:
		for i, u := range units {
			if i > 0 {
				b.WriteString(overlayLeadingComma(indent))
			} else {
				b.WriteString(indent)
			}
			b.WriteString(u.canonical)
			if u.trailingComment != "" {
				b.WriteString(" ")
				b.WriteString(u.trailingComment)
			}
			b.WriteString(nl)
		}
		b.WriteString(indent)
		b.WriteString(";")
		b.WriteString(nl)
	default: // StyleCommaAtEnd
		for i, u := range units {
			b.WriteString(indent)
			b.WriteString(u.canonical)
			if i == len(units)-1 {
				b.WriteString(";")
			} else {
				b.WriteString(",")
			}
			if u.trailingComment != "" {
				b.WriteString(" ")
				b.WriteString(u.trailingComment)
			}
			b.WriteString(nl)
		}
	}

	out := b.String()
	return strings.TrimSuffix(out, nl)
}
