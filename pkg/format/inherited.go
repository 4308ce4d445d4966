package format

import (
	"strings"

	"github.com/tuncb/dfixxer/pkg/fix"
	"github.com/tuncb/dfixxer/pkg/pascal"
)

// GenerateInheritedEdits expands a bare "inherited;" statement into an
// explicit call on the enclosing routine, "inherited Name();" or
// "inherited Name(Arg1, Arg2);", using the parameter names recorded on the
// routine's declaration node. A statement whose enclosing routine can't be
// resolved (synthetic parent, no recorded name) is left untouched.
func GenerateInheritedEdits(snapshot *pascal.FileSnapshot, opts Options) ([]fix.TextEdit, []Warning) {
	builder := fix.NewEditBuilder()
	var warnings []Warning

	for _, node := range pascal.FindByKind(snapshot.Root, pascal.NodeInheritedStatement) {
		r := node.SourceRange()
		if snapshot.InErrorRange(r.StartOffset) {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: ParseErrorInSection})
			continue
		}

		routine := node.Parent
		if routine == nil || routine.Attrs == nil || routine.Attrs.RoutineName == "" {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: RewriterDeclined})
			continue
		}

		semiIdx, ok := findTrailingSemicolon(snapshot.Tokens, node.LastToken)
		if !ok {
			warnings = append(warnings, Warning{Range: rangeOf(r.StartOffset, r.EndOffset), Reason: RewriterDeclined})
			continue
		}

		call := routine.Attrs.RoutineName
		if len(routine.Attrs.ParamNames) > 0 {
			call += "(" + strings.Join(routine.Attrs.ParamNames, ", ") + ")"
		} else {
			call += "()"
		}
		newText := "inherited " + call + ";"

		builder.ReplaceRangeFinal(r.StartOffset, snapshot.Tokens[semiIdx].EndOffset, newText)
	}

	return builder.Build(), warnings
}

func findTrailingSemicolon(tokens []pascal.Token, from int) (int, bool) {
	i := from + 1
	for i < len(tokens) {
		switch tokens[i].Kind {
		case pascal.TokWhitespace, pascal.TokNewline:
			i++
			continue
		case pascal.TokSemicolon:
			return i, true
		default:
			return 0, false
		}
	}
	return 0, false
}
