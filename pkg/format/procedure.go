package format

import (
	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/pascal"
)

// GenerateProcedureEdits inserts an empty parameter list on every
// parameterless procedure/function/constructor/destructor header that
// doesn't already have one, so "procedure Foo;" becomes "procedure Foo();".
func GenerateProcedureEdits(snapshot *pascal.FileSnapshot, opts Options) ([]fix.TextEdit, []Warning) {
	builder := fix.NewEditBuilder()
	var warnings []Warning

	decls := append(
		pascal.FindByKind(snapshot.Root, pascal.NodeProcedureDeclaration),
		pascal.FindByKind(snapshot.Root, pascal.NodeFunctionDeclaration)...,
	)
	for _, node := range decls {
		if node.Attrs != nil && node.Attrs.HasParens {
			continue
		}
		r := node.SourceRange()
		if snapshot.InErrorRange(r.StartOffset) {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: ParseErrorInSection})
			continue
		}
		if node.Attrs == nil {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: RewriterDeclined})
			continue
		}

		nameEnd, ok := routineNameEnd(snapshot, node)
		if !ok {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: RewriterDeclined})
			continue
		}

		builder.ReplaceRangeFinal(nameEnd, nameEnd, "()")
	}

	return builder.Build(), warnings
}

// routineNameEnd re-derives the byte offset just past a routine
// declaration's dotted name, by walking the token stream from the keyword
// the same way the parser does. The declaration doesn't carry its name as a
// child node, only as Attrs.RoutineName, so this is the rewriter's own
// lightweight re-scan.
func routineNameEnd(snapshot *pascal.FileSnapshot, node *pascal.Node) (int, bool) {
	tokens := snapshot.Tokens
	i := node.FirstToken + 1
	for i <= node.LastToken && (tokens[i].Kind == pascal.TokWhitespace || tokens[i].Kind == pascal.TokNewline) {
		i++
	}

	last := -1
	for i <= node.LastToken {
		tok := tokens[i]
		if tok.Kind != pascal.TokIdentifier && tok.Kind != pascal.TokKeyword {
			break
		}
		last = i
		i++
		if i <= node.LastToken && tokens[i].Kind == pascal.TokDot {
			last = i
			i++
			continue
		}
		break
	}

	if last < 0 {
		return 0, false
	}
	return tokens[last].EndOffset, true
}
