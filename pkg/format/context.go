package format

import (
	"github.com/tuncb/dfixxer/pkg/pascal"
)

// SpacingContext is a read-only bundle of position-indexed hints the text
// spacing transformer consults to resolve ambiguous operator positions.
type SpacingContext struct {
	GenericAnglePositions    map[int]struct{}
	UnarySignPositions       map[int]struct{}
	ExponentSignPositions    map[int]struct{}
	BinaryOperatorPositions  map[int]struct{}
	AssignmentPositions      map[int]struct{}
	DeclarationEqualsPositions map[int]struct{}
	ErrorRanges              []pascal.SourceRange
}

// NewSpacingContext builds an empty SpacingContext.
func NewSpacingContext() *SpacingContext {
	return &SpacingContext{
		GenericAnglePositions:      make(map[int]struct{}),
		UnarySignPositions:         make(map[int]struct{}),
		ExponentSignPositions:      make(map[int]struct{}),
		BinaryOperatorPositions:    make(map[int]struct{}),
		AssignmentPositions:        make(map[int]struct{}),
		DeclarationEqualsPositions: make(map[int]struct{}),
	}
}

// InErrorRange reports whether offset falls inside any recorded parser
// error-recovery range.
func (c *SpacingContext) InErrorRange(offset int) bool {
	for _, r := range c.ErrorRanges {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}

// CollectSpacingContext walks snapshot's syntax tree once, producing the
// hint sets the text spacing transformer needs, per the node-kind mapping
// in the component design: generic/template brackets, unary signs, binary
// operators, assignment operators, and declaration-context equals signs.
// Exponent signs are computed separately, lexically from the token stream.
func CollectSpacingContext(snapshot *pascal.FileSnapshot) *SpacingContext {
	ctx := NewSpacingContext()
	ctx.ErrorRanges = append(ctx.ErrorRanges, snapshot.ErrorRanges...)

	if snapshot.Root != nil {
		_ = pascal.Walk(snapshot.Root, func(n *pascal.Node) error {
			collectNode(snapshot, ctx, n)
			return nil
		})
	}

	collectExponentSigns(snapshot, ctx)

	return ctx
}

func collectNode(snapshot *pascal.FileSnapshot, ctx *SpacingContext, n *pascal.Node) {
	switch n.Kind {
	case pascal.NodeGenericTpl, pascal.NodeTyperefTpl, pascal.NodeExprTpl:
		r := n.SourceRange()
		ctx.GenericAnglePositions[r.StartOffset] = struct{}{}
		if r.EndOffset > r.StartOffset {
			ctx.GenericAnglePositions[r.EndOffset-1] = struct{}{}
		}
	case pascal.NodeExprUnary:
		ctx.UnarySignPositions[n.SourceRange().StartOffset] = struct{}{}
	case pascal.NodeExprBinary:
		ctx.BinaryOperatorPositions[n.SourceRange().StartOffset] = struct{}{}
	case pascal.NodeAssignment:
		ctx.AssignmentPositions[n.SourceRange().StartOffset] = struct{}{}
	case pascal.NodeDefaultValue:
		addEqualsOffsets(snapshot, ctx, n)
	case pascal.NodeError:
		ctx.ErrorRanges = append(ctx.ErrorRanges, n.SourceRange())
	}
}

// addEqualsOffsets records the byte offset of every '=' token within a
// defaultValue node's span as a declaration-context equals sign.
func addEqualsOffsets(snapshot *pascal.FileSnapshot, ctx *SpacingContext, n *pascal.Node) {
	for i := n.FirstToken; i >= 0 && i <= n.LastToken && i < len(snapshot.Tokens); i++ {
		tok := snapshot.Tokens[i]
		if tok.Kind == pascal.TokOperator && string(tok.Text(snapshot.Content)) == "=" {
			ctx.DeclarationEqualsPositions[tok.StartOffset] = struct{}{}
		}
	}
}

// collectExponentSigns scans numeric literal tokens directly: when an 'e'
// or 'E' inside a number is followed by '+' or '-', that sign's byte offset
// is recorded, independent of tree structure.
func collectExponentSigns(snapshot *pascal.FileSnapshot, ctx *SpacingContext) {
	for _, tok := range snapshot.Tokens {
		if tok.Kind != pascal.TokNumber {
			continue
		}
		text := tok.Text(snapshot.Content)
		for i := 0; i < len(text)-1; i++ {
			if (text[i] == 'e' || text[i] == 'E') && (text[i+1] == '+' || text[i+1] == '-') {
				ctx.ExponentSignPositions[tok.StartOffset+i+1] = struct{}{}
			}
		}
	}
}
