package pascal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tuncb/dfixxer/pkg/pascal"
)

// boundaryKeywords are the keywords that end an unrecognized or malformed
// construct during error recovery: the next reliable section keyword or
// routine header.
var boundaryKeywords = map[string]struct{}{
	"INTERFACE": {}, "IMPLEMENTATION": {}, "INITIALIZATION": {}, "FINALIZATION": {},
	"PRIVATE": {}, "PUBLIC": {}, "PROTECTED": {}, "PUBLISHED": {},
	"VAR": {}, "CONST": {}, "TYPE": {}, "BEGIN": {}, "END": {},
	"PROCEDURE": {}, "FUNCTION": {}, "CONSTRUCTOR": {}, "DESTRUCTOR": {},
}

// declarationDirectives are trailing modifier keywords that may follow a
// routine header before its body (or in place of one).
var declarationDirectives = map[string]struct{}{
	"VIRTUAL": {}, "OVERRIDE": {}, "ABSTRACT": {}, "OVERLOAD": {}, "REINTRODUCE": {},
	"DYNAMIC": {}, "STATIC": {}, "STDCALL": {}, "REGISTER": {}, "CDECL": {}, "PASCAL": {},
	"SAFECALL": {}, "EXPORT": {}, "FAR": {}, "NEAR": {}, "DEPRECATED": {}, "PLATFORM": {},
	"FORWARD": {}, "EXTERNAL": {}, "INLINE": {}, "ASM": {}, "MESSAGE": {}, "VARARGS": {},
	"LOCAL": {}, "DELAYED": {},
}

// parser builds a pascal.Node tree from a classified token stream. It is a
// single-pass recursive-descent parser over the constructs named in the
// data model (unit/program headers, uses lists, section keywords, routine
// headers) and falls back to a lexical scan of unstructured token runs for
// everything else, never building a full expression or statement grammar.
type parser struct {
	tokens  []pascal.Token
	content []byte
	file    *pascal.FileSnapshot
	idx     int
}

// Parse tokenizes and parses Pascal/Delphi source, returning a fully
// populated FileSnapshot. Returns an error only when the token stream
// itself fails its contiguity invariant; structural recognition failures
// are captured as ERROR nodes and error ranges instead.
func Parse(ctx context.Context, path string, content []byte) (*pascal.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := pascal.NewFileSnapshot(path, content)
	snapshot.Tokens = Tokenize(content)

	if !pascal.ValidateTokens(snapshot.Tokens, len(content)) {
		return nil, errors.New("invalid token stream: tokens do not cover content")
	}

	p := &parser{tokens: snapshot.Tokens, content: content, file: snapshot}
	root := &pascal.Node{Kind: pascal.NodeFile, FirstToken: 0, LastToken: len(p.tokens) - 1}
	if len(p.tokens) == 0 {
		root.FirstToken, root.LastToken = -1, -1
	}

	p.parseTopLevel(root)
	snapshot.Root = root
	setFile(root, snapshot)

	return snapshot, nil
}

func setFile(n *pascal.Node, f *pascal.FileSnapshot) {
	n.File = f
	for c := n.FirstChild; c != nil; c = c.Next {
		setFile(c, f)
	}
}

func (p *parser) last() int { return len(p.tokens) - 1 }

func (p *parser) textOf(i int) string {
	return strings.ToUpper(string(p.tokens[i].Text(p.content)))
}

func (p *parser) rawTextOf(i int) string {
	return string(p.tokens[i].Text(p.content))
}

func (p *parser) isKeywordAt(i int, word string) bool {
	return i >= 0 && i <= p.last() && p.tokens[i].Kind == pascal.TokKeyword && p.textOf(i) == word
}

// skipTrivia returns the first index at or after i that is not whitespace
// or a newline.
func (p *parser) skipTrivia(i int) int {
	for i <= p.last() && (p.tokens[i].Kind == pascal.TokWhitespace || p.tokens[i].Kind == pascal.TokNewline) {
		i++
	}
	return i
}

func newLeaf(kind pascal.NodeKind, first, last int) *pascal.Node {
	return &pascal.Node{Kind: kind, FirstToken: first, LastToken: last}
}

// rangeOf computes a node's byte range directly from the token stream,
// usable before File back-references are assigned.
func (p *parser) rangeOf(n *pascal.Node) pascal.SourceRange {
	if n.FirstToken < 0 || n.LastToken < 0 || n.LastToken > p.last() {
		return pascal.SourceRange{}
	}
	return pascal.SourceRange{
		StartOffset: p.tokens[n.FirstToken].StartOffset,
		EndOffset:   p.tokens[n.LastToken].EndOffset,
	}
}

// parseTopLevel drives the file-level scan, recognizing the unit/program
// header, uses section, single-keyword sections, routine declarations, and
// the top-level begin...end. block, and treats everything else leniently.
func (p *parser) parseTopLevel(root *pascal.Node) {
	for p.idx <= p.last() {
		tok := p.tokens[p.idx]

		switch tok.Kind {
		case pascal.TokWhitespace, pascal.TokNewline:
			p.idx++
		case pascal.TokLineComment:
			root.AppendChild(newLeaf(pascal.NodeComment, p.idx, p.idx))
			p.idx++
		case pascal.TokBraceComment, pascal.TokParenStarComment:
			root.AppendChild(newLeaf(p.commentOrDirectiveKind(p.idx), p.idx, p.idx))
			p.idx++
		case pascal.TokKeyword:
			p.parseTopLevelKeyword(root)
		default:
			p.idx++
		}
	}
}

func (p *parser) commentOrDirectiveKind(i int) pascal.NodeKind {
	text := p.rawTextOf(i)
	if strings.HasPrefix(text, "{$") || strings.HasPrefix(text, "(*$") {
		return pascal.NodePreprocessor
	}
	return pascal.NodeComment
}

func (p *parser) parseTopLevelKeyword(root *pascal.Node) {
	switch p.textOf(p.idx) {
	case "UNIT":
		p.parseUnitOrProgramHeader(root, pascal.NodeUnit)
	case "PROGRAM", "LIBRARY":
		p.parseUnitOrProgramHeader(root, pascal.NodeProgram)
	case "USES":
		p.parseUsesSection(root)
	case "INTERFACE", "IMPLEMENTATION", "INITIALIZATION", "FINALIZATION",
		"PRIVATE", "PUBLIC", "PROTECTED", "PUBLISHED":
		root.AppendChild(newLeaf(sectionKeywordKind(p.textOf(p.idx)), p.idx, p.idx))
		p.idx++
	case "VAR", "CONST", "TYPE":
		p.parseDeclarationSection(root)
	case "BEGIN":
		p.parseTopLevelBlock(root)
	case "PROCEDURE", "FUNCTION", "CONSTRUCTOR", "DESTRUCTOR", "OPERATOR":
		p.parseRoutineDeclaration(root)
	default:
		p.idx++
	}
}

func sectionKeywordKind(word string) pascal.NodeKind {
	switch word {
	case "INTERFACE":
		return pascal.NodeInterface
	case "IMPLEMENTATION":
		return pascal.NodeImplementation
	case "INITIALIZATION":
		return pascal.NodeInitialization
	case "FINALIZATION":
		return pascal.NodeFinalization
	case "PRIVATE":
		return pascal.NodePrivate
	case "PUBLIC":
		return pascal.NodePublic
	case "PROTECTED":
		return pascal.NodeProtected
	case "PUBLISHED":
		return pascal.NodePublished
	case "VAR":
		return pascal.NodeVarSection
	case "CONST":
		return pascal.NodeConstSection
	case "TYPE":
		return pascal.NodeTypeSection
	case "BEGIN":
		return pascal.NodeBeginKeyword
	case "END":
		return pascal.NodeEndKeyword
	default:
		return pascal.NodeError
	}
}

// collectDottedName consumes an Identifier (Dot Identifier)* run starting
// at i with no intervening trivia, and returns the index of its last token.
// Returns i-1 if no name was found.
func (p *parser) collectDottedName(i int) int {
	last := i - 1
	for i <= p.last() {
		tok := p.tokens[i]
		if tok.Kind != pascal.TokIdentifier && tok.Kind != pascal.TokKeyword {
			break
		}
		last = i
		i++
		if i <= p.last() && p.tokens[i].Kind == pascal.TokDot {
			last = i
			i++
			continue
		}
		break
	}
	return last
}

func (p *parser) lastIdentifierText(start, end int) string {
	for i := end; i >= start; i-- {
		if p.tokens[i].Kind == pascal.TokIdentifier || p.tokens[i].Kind == pascal.TokKeyword {
			return p.rawTextOf(i)
		}
	}
	return ""
}

// parseUnitOrProgramHeader parses "unit X;" / "program X;" / "library X;".
func (p *parser) parseUnitOrProgramHeader(root *pascal.Node, kind pascal.NodeKind) {
	start := p.idx
	i := p.skipTrivia(p.idx + 1)
	nameStart := i
	nameEnd := p.collectDottedName(i)

	i = p.skipTrivia(nameEnd + 1)
	end := nameEnd
	if i <= p.last() && p.tokens[i].Kind == pascal.TokSemicolon {
		end = i
		i++
	} else {
		end = p.scanToRecoveryBoundary(i)
		i = end + 1
		node := newLeaf(pascal.NodeError, start, end)
		p.file.AddErrorRange(p.rangeOf(node))
		root.AppendChild(node)
		p.idx = i
		return
	}

	node := newLeaf(kind, start, end)
	if nameStart <= nameEnd {
		node.AppendChild(newLeaf(pascal.NodeIdentifier, nameStart, nameEnd))
	}
	root.AppendChild(node)
	p.idx = i
}

// scanToRecoveryBoundary scans forward from i until a semicolon (inclusive)
// or a boundary keyword (exclusive, returned as the index just before it).
func (p *parser) scanToRecoveryBoundary(i int) int {
	for i <= p.last() {
		tok := p.tokens[i]
		if tok.Kind == pascal.TokSemicolon {
			return i
		}
		if tok.Kind == pascal.TokKeyword {
			if _, ok := boundaryKeywords[p.textOf(i)]; ok {
				return i - 1
			}
		}
		i++
	}
	return p.last()
}

// parseUsesSection parses a uses list into NodeModule children, preserving
// any interleaved comment/preprocessor nodes for the uses rewriter's own
// precondition checks.
func (p *parser) parseUsesSection(root *pascal.Node) {
	start := p.idx
	node := &pascal.Node{Kind: pascal.NodeUses, FirstToken: start, LastToken: start}
	i := p.skipTrivia(p.idx + 1)
	terminated := false

	for i <= p.last() {
		tok := p.tokens[i]
		switch {
		case tok.Kind == pascal.TokSemicolon:
			node.LastToken = i
			i++
			terminated = true
		case tok.Kind == pascal.TokLineComment:
			node.AppendChild(newLeaf(pascal.NodeComment, i, i))
			i++
			continue
		case tok.Kind == pascal.TokBraceComment || tok.Kind == pascal.TokParenStarComment:
			node.AppendChild(newLeaf(p.commentOrDirectiveKind(i), i, i))
			i++
			continue
		case tok.Kind == pascal.TokComma || tok.Kind == pascal.TokWhitespace || tok.Kind == pascal.TokNewline:
			i++
			continue
		case tok.Kind == pascal.TokIdentifier || tok.Kind == pascal.TokKeyword:
			nameStart := i
			nameEnd := p.collectDottedName(i)
			node.AppendChild(newLeaf(pascal.NodeModule, nameStart, nameEnd))
			i = nameEnd + 1
			continue
		default:
			i++
			continue
		}
		break
	}

	if !terminated {
		node.LastToken = min(i-1, p.last())
		if node.LastToken < node.FirstToken {
			node.LastToken = node.FirstToken
		}
		p.file.AddErrorRange(p.rangeOf(node))
	}

	root.AppendChild(node)
	p.idx = i
}

// parseDeclarationSection emits the var/const/type keyword leaf, then scans
// the following declaration run (up to the next section boundary) for
// generics, default values, and declared types.
func (p *parser) parseDeclarationSection(root *pascal.Node) {
	keywordIdx := p.idx
	root.AppendChild(newLeaf(sectionKeywordKind(p.textOf(keywordIdx)), keywordIdx, keywordIdx))

	runStart := keywordIdx + 1
	runEnd := p.findDeclarationRunEnd(runStart)
	p.scanDeclarationRun(root, runStart, runEnd)
	p.idx = runEnd + 1
}

// findDeclarationRunEnd returns the last token index before the next
// section-starting keyword, or the end of the file.
func (p *parser) findDeclarationRunEnd(i int) int {
	for i <= p.last() {
		if p.tokens[i].Kind == pascal.TokKeyword {
			switch p.textOf(i) {
			case "INTERFACE", "IMPLEMENTATION", "INITIALIZATION", "FINALIZATION",
				"PRIVATE", "PUBLIC", "PROTECTED", "PUBLISHED",
				"VAR", "CONST", "TYPE", "BEGIN",
				"PROCEDURE", "FUNCTION", "CONSTRUCTOR", "DESTRUCTOR":
				return i - 1
			}
		}
		i++
	}
	return p.last()
}

// scanDeclarationRun walks [start,end] wrapping ": Type" spans as
// NodeDeclType and "= Value" spans as NodeDefaultValue, and dispatches the
// rest to scanLexicalHints in declaration context.
func (p *parser) scanDeclarationRun(parent *pascal.Node, start, end int) {
	i := start
	for i <= end && i <= p.last() {
		tok := p.tokens[i]
		if tok.Kind == pascal.TokColon {
			typeStart := i
			j := i + 1
			for j <= end && p.tokens[j].Kind != pascal.TokSemicolon &&
				!(p.tokens[j].Kind == pascal.TokOperator && p.rawTextOf(j) == "=") {
				j++
			}
			declEnd := j - 1
			if declEnd >= typeStart {
				parent.AppendChild(newLeaf(pascal.NodeDeclType, typeStart, declEnd))
			}
			if j <= end && p.tokens[j].Kind == pascal.TokOperator && p.rawTextOf(j) == "=" {
				valStart := j
				k := j + 1
				for k <= end && p.tokens[k].Kind != pascal.TokSemicolon {
					k++
				}
				parent.AppendChild(newLeaf(pascal.NodeDefaultValue, valStart, k-1))
				i = k + 1
				continue
			}
			i = j + 1
			continue
		}
		i++
	}
	p.scanLexicalHints(parent, start, end, true)
}

// parseTopLevelBlock parses the program's begin...end. body.
func (p *parser) parseTopLevelBlock(root *pascal.Node) {
	beginIdx := p.idx
	root.AppendChild(newLeaf(pascal.NodeBeginKeyword, beginIdx, beginIdx))

	endKeywordIdx, trailingIdx := p.scanBlock(beginIdx)
	if endKeywordIdx < 0 {
		node := newLeaf(pascal.NodeError, beginIdx+1, trailingIdx)
		p.file.AddErrorRange(p.rangeOf(node))
		root.AppendChild(node)
		p.idx = trailingIdx + 1
		return
	}

	p.scanLexicalHints(root, beginIdx+1, endKeywordIdx-1, false)
	root.AppendChild(newLeaf(pascal.NodeEndKeyword, endKeywordIdx, endKeywordIdx))
	p.idx = trailingIdx + 1
}

// scanBlock scans forward from a BEGIN token, tracking nested block-opening
// keywords, and returns the index of the matching END keyword together with
// the index of any trailing ';' or '.' consumed with it. Returns (-1, idx)
// on unterminated input, where idx is the last token scanned.
func (p *parser) scanBlock(beginIdx int) (endKeywordIdx, trailingIdx int) {
	depth := 1
	j := beginIdx + 1
	for j <= p.last() {
		if p.tokens[j].Kind == pascal.TokKeyword {
			switch p.textOf(j) {
			case "BEGIN", "CASE", "TRY", "RECORD":
				depth++
			case "END":
				depth--
				if depth == 0 {
					trailing := j
					n := p.skipTrivia(j + 1)
					if n <= p.last() && (p.tokens[n].Kind == pascal.TokSemicolon || p.tokens[n].Kind == pascal.TokDot) {
						trailing = n
					}
					return j, trailing
				}
			}
		}
		j++
	}
	return -1, p.last()
}

// parseRoutineDeclaration parses a procedure/function/constructor/
// destructor/operator header, its trailing directives, and (if present)
// its body, recording the resolved routine name and parameter names used
// by the procedure-signature and inherited-call rewriters.
func (p *parser) parseRoutineDeclaration(root *pascal.Node) {
	start := p.idx
	isFunction := p.textOf(p.idx) == "FUNCTION" || p.textOf(p.idx) == "OPERATOR"
	kind := pascal.NodeProcedureDeclaration
	if isFunction {
		kind = pascal.NodeFunctionDeclaration
	}

	i := p.skipTrivia(p.idx + 1)
	nameStart := i
	nameEnd := p.collectDottedName(i)
	routineName := p.lastIdentifierText(nameStart, nameEnd)
	i = p.skipTrivia(nameEnd + 1)

	hasParens := false
	var paramNames []string
	if i <= p.last() && p.tokens[i].Kind == pascal.TokLParen {
		hasParens = true
		paramNames, i = p.collectParamNames(i)
	}
	i = p.skipTrivia(i)

	if isFunction && i <= p.last() && p.tokens[i].Kind == pascal.TokColon {
		i = p.skipReturnType(p.skipTrivia(i + 1))
	}
	i = p.skipTrivia(i)

	headerEnd := i
	if i > p.last() || p.tokens[i].Kind != pascal.TokSemicolon {
		end := p.scanToRecoveryBoundary(i)
		node := newLeaf(pascal.NodeError, start, end)
		p.file.AddErrorRange(p.rangeOf(node))
		root.AppendChild(node)
		p.idx = end + 1
		return
	}
	headerEnd = i
	i++

	end := headerEnd
	for {
		j := p.skipTrivia(i)
		if j <= p.last() && p.tokens[j].Kind == pascal.TokKeyword {
			if _, ok := declarationDirectives[p.textOf(j)]; ok {
				k := p.scanDirectiveClause(j)
				end = k
				i = k + 1
				continue
			}
		}
		break
	}

	node := &pascal.Node{
		Kind:       kind,
		FirstToken: start,
		LastToken:  end,
		Attrs: &pascal.NodeAttrs{
			RoutineName: routineName,
			ParamNames:  paramNames,
			HasParens:   hasParens,
		},
	}

	beginIdx, endKeywordIdx, trailingIdx, hasBody := p.scanRoutineBody(i)
	if hasBody {
		if endKeywordIdx < 0 {
			node.LastToken = trailingIdx
			p.file.AddErrorRange(p.rangeOf(node))
		} else {
			p.scanLexicalHints(node, i, beginIdx-1, true)
			node.AppendChild(newLeaf(pascal.NodeBeginKeyword, beginIdx, beginIdx))
			p.scanLexicalHints(node, beginIdx+1, endKeywordIdx-1, false)
			node.AppendChild(newLeaf(pascal.NodeEndKeyword, endKeywordIdx, endKeywordIdx))
			node.LastToken = trailingIdx
		}
		p.idx = trailingIdx + 1
	} else {
		p.scanLexicalHints(node, headerEnd, end, true)
		p.idx = i
	}

	root.AppendChild(node)
}

// scanRoutineBody scans forward from i for local declarations followed by a
// begin...end body, or determines that no body follows (a forward or
// interface declaration).
func (p *parser) scanRoutineBody(i int) (beginIdx, endKeywordIdx, trailingIdx int, hasBody bool) {
	j := i
	for j <= p.last() {
		if p.tokens[j].Kind == pascal.TokKeyword {
			switch p.textOf(j) {
			case "BEGIN":
				endKeywordIdx, trailingIdx = p.scanBlock(j)
				return j, endKeywordIdx, trailingIdx, true
			case "PROCEDURE", "FUNCTION", "CONSTRUCTOR", "DESTRUCTOR", "OPERATOR",
				"INTERFACE", "IMPLEMENTATION", "INITIALIZATION", "FINALIZATION", "END":
				return -1, -1, j - 1, false
			}
		}
		j++
	}
	return -1, -1, p.last(), false
}

// collectParamNames parses a parenthesized parameter list starting at the
// opening '(' and returns the flattened list of parameter identifier names
// in declaration order, along with the index just past the closing ')'.
func (p *parser) collectParamNames(i int) ([]string, int) {
	var names []string
	var pending []string
	depth := 1
	i++
	for i <= p.last() && depth > 0 {
		tok := p.tokens[i]
		switch tok.Kind {
		case pascal.TokLParen:
			depth++
			i++
		case pascal.TokRParen:
			depth--
			i++
		case pascal.TokIdentifier:
			pending = append(pending, p.rawTextOf(i))
			i++
		case pascal.TokKeyword:
			switch p.textOf(i) {
			case "VAR", "CONST", "OUT":
				i++
			default:
				i++
			}
		case pascal.TokColon:
			i++
		typeClause:
			for i <= p.last() && depth > 0 {
				switch p.tokens[i].Kind {
				case pascal.TokLParen:
					depth++
				case pascal.TokRParen:
					depth--
					i++
					if depth == 0 {
						names = append(names, pending...)
						pending = nil
						return names, i
					}
					continue
				case pascal.TokSemicolon:
					i++
					names = append(names, pending...)
					pending = nil
					break typeClause
				}
				i++
			}
		default:
			i++
		}
	}
	names = append(names, pending...)
	return names, i
}

// skipReturnType scans a function's return-type clause up to (not
// including) the terminating ';', treating a balanced "<...>" generic span
// as opaque.
func (p *parser) skipReturnType(i int) int {
	for i <= p.last() {
		tok := p.tokens[i]
		if tok.Kind == pascal.TokSemicolon {
			return i
		}
		if tok.Kind == pascal.TokLAngle {
			if j, ok := p.matchGeneric(i, p.last()); ok {
				i = j + 1
				continue
			}
		}
		i++
	}
	return i
}

// scanDirectiveClause scans a trailing directive keyword's clause (which
// may carry string/identifier arguments) up to and including its ';'.
func (p *parser) scanDirectiveClause(j int) int {
	for j <= p.last() {
		if p.tokens[j].Kind == pascal.TokSemicolon {
			return j
		}
		j++
	}
	return p.last()
}

// matchGeneric reports whether the '<' at start opens a balanced
// identifier/dot/comma run closed by a matching '>' within limit, treating
// that span as a generic/template bracket rather than comparison operators.
func (p *parser) matchGeneric(start, limit int) (int, bool) {
	depth := 0
	for i := start; i <= limit; i++ {
		switch p.tokens[i].Kind {
		case pascal.TokLAngle:
			depth++
		case pascal.TokRAngle:
			depth--
			if depth == 0 {
				return i, true
			}
		case pascal.TokIdentifier, pascal.TokWhitespace, pascal.TokNewline,
			pascal.TokComma, pascal.TokDot, pascal.TokKeyword, pascal.TokLBracket, pascal.TokRBracket:
			// allowed inside a generic/template argument list
		default:
			return 0, false
		}
	}
	return 0, false
}

// scanLexicalHints walks [start,end] classifying operator positions the
// spacing context collector needs: generic brackets, unary/binary signs,
// assignment operators, declaration equals (when declContext), and bare
// "inherited;" statements. It does not build an expression grammar.
func (p *parser) scanLexicalHints(parent *pascal.Node, start, end int, declContext bool) {
	i := start
	for i <= end && i <= p.last() {
		tok := p.tokens[i]
		switch tok.Kind {
		case pascal.TokLAngle:
			if j, ok := p.matchGeneric(i, min(end, p.last())); ok {
				parent.AppendChild(newLeaf(pascal.NodeGenericTpl, i, j))
				i = j + 1
				continue
			}
		case pascal.TokRAngle:
			parent.AppendChild(newLeaf(pascal.NodeExprBinary, i, i))
		case pascal.TokOperator:
			p.classifyOperator(parent, i, declContext)
		case pascal.TokKeyword:
			if p.textOf(i) == "INHERITED" {
				n := p.nextSignificant(i + 1)
				if n <= end && n <= p.last() && p.tokens[n].Kind == pascal.TokSemicolon {
					parent.AppendChild(newLeaf(pascal.NodeInheritedStatement, i, i))
				}
			}
		}
		i++
	}
}

func (p *parser) classifyOperator(parent *pascal.Node, i int, declContext bool) {
	text := p.rawTextOf(i)
	switch text {
	case ":=", "+=", "-=", "*=", "/=":
		parent.AppendChild(newLeaf(pascal.NodeAssignment, i, i))
	case "<=", ">=", "<>":
		parent.AppendChild(newLeaf(pascal.NodeExprBinary, i, i))
	case "+", "-":
		if p.isUnaryContext(i) {
			parent.AppendChild(newLeaf(pascal.NodeExprUnary, i, i))
		} else {
			parent.AppendChild(newLeaf(pascal.NodeExprBinary, i, i))
		}
	case "=":
		if declContext {
			parent.AppendChild(newLeaf(pascal.NodeDefaultValue, i, i))
		} else {
			parent.AppendChild(newLeaf(pascal.NodeExprBinary, i, i))
		}
	case "*", "/", "^", "@", "&":
		parent.AppendChild(newLeaf(pascal.NodeExprBinary, i, i))
	}
}

// isUnaryContext reports whether the +/- at i is a unary sign by examining
// the previous significant token: an operator, opening bracket, separator,
// or control keyword all signal the start of an operand rather than a
// binary operator position.
func (p *parser) isUnaryContext(i int) bool {
	prev := p.prevSignificant(i - 1)
	if prev < 0 {
		return true
	}
	tok := p.tokens[prev]
	switch tok.Kind {
	case pascal.TokOperator, pascal.TokLParen, pascal.TokLBracket,
		pascal.TokComma, pascal.TokSemicolon, pascal.TokColon:
		return true
	case pascal.TokKeyword:
		switch p.textOf(prev) {
		case "THEN", "ELSE", "DO", "OF", "TO", "DOWNTO", "BEGIN",
			"DIV", "MOD", "AND", "OR", "NOT", "XOR", "IN", "IS":
			return true
		}
	}
	return false
}

func (p *parser) nextSignificant(i int) int {
	for i <= p.last() && (p.tokens[i].Kind == pascal.TokWhitespace || p.tokens[i].Kind == pascal.TokNewline) {
		i++
	}
	return i
}

func (p *parser) prevSignificant(i int) int {
	for i >= 0 && (p.tokens[i].Kind == pascal.TokWhitespace || p.tokens[i].Kind == pascal.TokNewline) {
		i--
	}
	return i
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
