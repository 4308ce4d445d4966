package format

import (
	"bytes"

	"github.com/tuncb/dfixxer/pkg/pascal"
	pascallex "github.com/tuncb/dfixxer/pkg/parser/pascal"
)

// gapRequirement is the whitespace constraint a governed token imposes on
// the gap immediately before or after it.
type gapRequirement int

const (
	reqUnconstrained gapRequirement = iota
	reqForceZero
	reqForceOne
)

// TransformSpacing rewrites horizontal whitespace around the configured set
// of tokens within content[start:end], consulting ctx (indexed by absolute
// byte offset into content) for generic/unary/exponent/declaration
// overrides, and leaves string and comment interiors untouched apart from
// the configured padding and trailing-whitespace options. Returns the
// rewritten slice; callers compare against the original to decide whether
// an edit actually changed anything.
func TransformSpacing(content []byte, start, end int, ctx *SpacingContext, opts Options) []byte {
	slice := content[start:end]
	tokens := pascallex.Tokenize(slice)

	s := &spacer{
		tokens:  tokens,
		content: slice,
		base:    start,
		ctx:     ctx,
		opts:    opts,
	}

	out := s.run()
	if opts.TextChanges.TrimTrailingWhitespace {
		out = trimTrailingWhitespace(out)
	}
	return out
}

type spacer struct {
	tokens  []pascal.Token
	content []byte
	base    int
	ctx     *SpacingContext
	opts    Options
}

func (s *spacer) run() []byte {
	var out []byte

	i := 0
	for i < len(s.tokens) {
		tok := s.tokens[i]

		switch tok.Kind {
		case pascal.TokWhitespace, pascal.TokNewline:
			// Gaps are resolved when processing the significant token that
			// follows them; a leading gap with no preceding significant
			// token is copied verbatim below.
			j := i
			for j < len(s.tokens) && (s.tokens[j].Kind == pascal.TokWhitespace || s.tokens[j].Kind == pascal.TokNewline) {
				j++
			}
			if j >= len(s.tokens) {
				// Trailing gap: nothing follows, preserve as-is.
				out = append(out, s.gapText(i, j)...)
				i = j
				continue
			}
			prev := s.prevSignificant(i - 1)
			out = append(out, s.resolveGap(prev, i, j, j)...)
			i = j
		case pascal.TokString:
			out = append(out, tok.Text(s.content)...)
			i++
		case pascal.TokLineComment:
			out = append(out, s.padLineComment(tok)...)
			i++
		case pascal.TokBraceComment:
			out = append(out, s.padBlockComment(tok, '{', '}', "{$")...)
			i++
		case pascal.TokParenStarComment:
			out = append(out, s.padBlockComment(tok, 0, 0, "(*$")...)
			i++
		default:
			// A significant, spacing-governed token. If the previous emitted
			// content did not already account for the gap before it (i.e.
			// there was no whitespace token, meaning zero original gap),
			// resolve that zero-width gap here too.
			if i == 0 || (s.tokens[i-1].Kind != pascal.TokWhitespace && s.tokens[i-1].Kind != pascal.TokNewline) {
				prev := s.prevSignificant(i - 1)
				out = append(out, s.resolveGap(prev, i, i, i)...)
			}
			out = append(out, tok.Text(s.content)...)
			i++
		}
	}

	return out
}

// gapText returns the original slice text spanning tokens [from,to).
func (s *spacer) gapText(from, to int) []byte {
	if from >= to {
		return nil
	}
	return s.content[s.tokens[from].StartOffset:s.tokens[to-1].EndOffset]
}

// resolveGap decides the final text of the gap between significant tokens
// prevIdx and nextIdx, where the gap's original token span is [gapFrom,
// gapTo). prevIdx is -1 when the gap is at the very start of this call's
// input and nextIdx is len(tokens) when it is at the very end; either case
// exempts the "insert exactly one space" rules.
func (s *spacer) resolveGap(prevIdx, gapFrom, gapTo, nextIdx int) []byte {
	original := s.gapText(gapFrom, gapTo)

	if prevIdx < 0 || nextIdx >= len(s.tokens) {
		return original
	}

	// A gap spanning a newline is indentation/line-structure, not operator
	// spacing; leave it untouched (trailing-whitespace trimming is applied
	// separately as a whole-output pass).
	for k := gapFrom; k < gapTo; k++ {
		if s.tokens[k].Kind == pascal.TokNewline {
			return original
		}
	}

	_, afterPrev := s.requirements(prevIdx)
	beforeNext, _ := s.requirements(nextIdx)

	switch {
	case afterPrev == reqForceZero || beforeNext == reqForceZero:
		return nil
	case afterPrev == reqForceOne || beforeNext == reqForceOne:
		return []byte(" ")
	default:
		return original
	}
}

func (s *spacer) prevSignificant(i int) int {
	for i >= 0 && (s.tokens[i].Kind == pascal.TokWhitespace || s.tokens[i].Kind == pascal.TokNewline) {
		i--
	}
	return i
}

// requirements returns the gap constraints token i imposes on the gaps
// immediately before and after it, applying the precedence order from the
// component design: template/generic, assignment, unary/exponent,
// declaration equals, then the configured binary/comparison operation.
func (s *spacer) requirements(i int) (before, after gapRequirement) {
	tok := s.tokens[i]
	abs := s.base + tok.StartOffset
	tc := s.opts.TextChanges

	switch tok.Kind {
	case pascal.TokLAngle:
		if _, ok := s.ctx.GenericAnglePositions[abs]; ok {
			return reqForceZero, reqForceZero
		}
		return opToReq(tc.Lt)
	case pascal.TokRAngle:
		if _, ok := s.ctx.GenericAnglePositions[abs]; ok {
			return reqForceZero, reqForceZero
		}
		return opToReq(tc.Gt)
	case pascal.TokSemicolon:
		return opToReq(tc.SemiColon)
	case pascal.TokComma:
		return opToReq(tc.Comma)
	case pascal.TokColon:
		if tc.ColonNumericException && s.isNumericColon(i) {
			return reqForceZero, reqForceZero
		}
		return opToReq(tc.Colon)
	case pascal.TokOperator:
		return s.operatorRequirements(i, abs)
	default:
		return reqUnconstrained, reqUnconstrained
	}
}

func (s *spacer) operatorRequirements(i, abs int) (before, after gapRequirement) {
	tc := s.opts.TextChanges
	text := string(s.tokens[i].Text(s.content))

	switch text {
	case ":=":
		return opToReq(tc.Assign)
	case "+=":
		return opToReq(tc.AssignAdd)
	case "-=":
		return opToReq(tc.AssignSub)
	case "*=":
		return opToReq(tc.AssignMul)
	case "/=":
		return opToReq(tc.AssignDiv)
	case "<=":
		return opToReq(tc.Lte)
	case ">=":
		return opToReq(tc.Gte)
	case "<>":
		return opToReq(tc.Neq)
	case "=":
		if _, ok := s.ctx.DeclarationEqualsPositions[abs]; ok && tc.Eq == SpaceNoChange {
			return reqUnconstrained, reqUnconstrained
		}
		return opToReq(tc.Eq)
	case "+", "-":
		if _, ok := s.ctx.UnarySignPositions[abs]; ok {
			return reqUnconstrained, reqForceZero
		}
		if _, ok := s.ctx.ExponentSignPositions[abs]; ok {
			return reqUnconstrained, reqForceZero
		}
		// Lexical fallback for signs outside any parsed construct: a sign
		// following an operator, opening bracket, or separator is unary.
		if prev := s.prevSignificant(i - 1); prev >= 0 {
			switch s.tokens[prev].Kind {
			case pascal.TokOperator, pascal.TokLParen, pascal.TokLBracket,
				pascal.TokComma, pascal.TokSemicolon, pascal.TokColon:
				return reqUnconstrained, reqForceZero
			}
		}
		if text == "+" {
			return opToReq(tc.Add)
		}
		return opToReq(tc.Sub)
	case "*":
		return opToReq(tc.Mul)
	case "/":
		return opToReq(tc.FDiv)
	default:
		return reqUnconstrained, reqUnconstrained
	}
}

func opToReq(op SpaceOperation) (before, after gapRequirement) {
	switch op {
	case SpaceBefore:
		return reqForceOne, reqUnconstrained
	case SpaceAfter:
		return reqUnconstrained, reqForceOne
	case SpaceBeforeAndAfter:
		return reqForceOne, reqForceOne
	default:
		return reqUnconstrained, reqUnconstrained
	}
}

// isNumericColon reports whether the colon at i sits directly between two
// numeric tokens, e.g. `12:30`, or the second colon in `Value:0:2`.
func (s *spacer) isNumericColon(i int) bool {
	prev := s.prevSignificant(i - 1)
	next := s.nextSignificantFrom(i + 1)
	if prev < 0 || next >= len(s.tokens) {
		return false
	}
	return s.tokens[prev].Kind == pascal.TokNumber && s.tokens[next].Kind == pascal.TokNumber
}

func (s *spacer) nextSignificantFrom(i int) int {
	for i < len(s.tokens) && (s.tokens[i].Kind == pascal.TokWhitespace || s.tokens[i].Kind == pascal.TokNewline) {
		i++
	}
	return i
}

// padLineComment ensures exactly one space after the leading "//" (or
// "///...") run of a line comment, when the option is enabled.
func (s *spacer) padLineComment(tok pascal.Token) []byte {
	text := tok.Text(s.content)
	if !s.opts.TextChanges.SpaceAfterLineCommentSlashes {
		return text
	}

	i := 0
	for i < len(text) && text[i] == '/' {
		i++
	}
	rest := text[i:]
	if len(rest) == 0 {
		return text
	}
	j := i
	for j < len(text) && text[j] == ' ' {
		j++
	}
	if j == i+1 || j == len(text) {
		return text
	}

	out := make([]byte, 0, len(text)+1)
	out = append(out, text[:i]...)
	out = append(out, ' ')
	out = append(out, text[j:]...)
	return out
}

// padBlockComment ensures exactly one space after the opening marker and
// before the closing marker of a brace or paren-star comment, unless the
// comment is a directive (opaque, left untouched) or the option is
// disabled. The two byte parameters are not used: directivePrefix selects
// the comment form, one-byte "{"/"}" markers for brace comments and the
// two-byte "(*"/"*)" sequences for paren-star comments.
func (s *spacer) padBlockComment(tok pascal.Token, _, _ byte, directivePrefix string) []byte {
	text := tok.Text(s.content)

	isParenStar := directivePrefix == "(*$"
	enabled := s.opts.TextChanges.SpaceInsideBraceComments
	if isParenStar {
		enabled = s.opts.TextChanges.SpaceInsideParenStarComments
	}
	if !enabled {
		return text
	}
	if hasDirectivePrefix(text, isParenStar) {
		return text
	}

	var openLen, closeLen int
	if isParenStar {
		openLen, closeLen = 2, 2
	} else {
		openLen, closeLen = 1, 1
	}
	if len(text) < openLen+closeLen {
		return text
	}

	inner := text[openLen : len(text)-closeLen]
	inner = padInner(inner)

	out := make([]byte, 0, len(text)+2)
	out = append(out, text[:openLen]...)
	out = append(out, inner...)
	out = append(out, text[len(text)-closeLen:]...)
	return out
}

func hasDirectivePrefix(text []byte, isParenStar bool) bool {
	if isParenStar {
		return len(text) >= 3 && text[0] == '(' && text[1] == '*' && text[2] == '$'
	}
	return len(text) >= 2 && text[0] == '{' && text[1] == '$'
}

func padInner(inner []byte) []byte {
	trimmed := bytes.Trim(inner, " ")
	if len(trimmed) == 0 {
		return inner
	}
	out := make([]byte, 0, len(trimmed)+2)
	out = append(out, ' ')
	out = append(out, trimmed...)
	return append(out, ' ')
}

// trimTrailingWhitespace strips trailing spaces/tabs from every physical
// line, uniformly across \n, \r\n, and isolated \r.
func trimTrailingWhitespace(content []byte) []byte {
	out := make([]byte, 0, len(content))
	lineStart := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' || content[i] == '\r' {
			line := content[lineStart:i]
			trimmed := trimTrailingSpacesTabs(line)
			out = append(out, trimmed...)
			if i < len(content) {
				out = append(out, content[i])
				if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
					out = append(out, '\n')
					i++
				}
			}
			lineStart = i + 1
		}
	}
	return out
}

func trimTrailingSpacesTabs(line []byte) []byte {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return line[:end]
}
