package pascal

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies the type of a token in the Pascal/Delphi source.
type TokenKind uint16

// Token kinds cover every byte in the source.
const (
	TokText TokenKind = iota
	TokWhitespace
	TokNewline

	TokIdentifier
	TokKeyword
	TokNumber
	TokString

	TokLineComment     // from '//' to end of line
	TokBraceComment     // '{' ... '}', including '{$...}' directives
	TokParenStarComment // '(*' ... '*)', including '(*$...*)' directives
	TokPreprocessor     // a directive not already captured by a comment form

	TokSemicolon
	TokComma
	TokColon
	TokDot
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokLAngle
	TokRAngle

	TokOperator // any operator/punctuation not named above

	TokOther
)

// tokenKindNames gives String() a name for every TokenKind without
// depending on generated code.
var tokenKindNames = map[TokenKind]string{
	TokText:              "Text",
	TokWhitespace:        "Whitespace",
	TokNewline:           "Newline",
	TokIdentifier:        "Identifier",
	TokKeyword:           "Keyword",
	TokNumber:            "Number",
	TokString:            "String",
	TokLineComment:       "LineComment",
	TokBraceComment:      "BraceComment",
	TokParenStarComment:  "ParenStarComment",
	TokPreprocessor:      "Preprocessor",
	TokSemicolon:         "Semicolon",
	TokComma:             "Comma",
	TokColon:             "Colon",
	TokDot:               "Dot",
	TokLParen:            "LParen",
	TokRParen:            "RParen",
	TokLBracket:          "LBracket",
	TokRBracket:          "RBracket",
	TokLAngle:            "LAngle",
	TokRAngle:            "RAngle",
	TokOperator:          "Operator",
	TokOther:             "Other",
}

// String returns the token kind's name, as it would appear in parse-debug output.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token represents a classified span of bytes in the source.
// Tokens are contiguous and non-overlapping, covering [0, len(Content)).
type Token struct {
	Kind        TokenKind
	StartOffset int
	EndOffset   int
	Meta        any
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// ValidateTokens checks that a token slice is contiguous, non-overlapping,
// and covers the full content range [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}
	if tokens[0].StartOffset != 0 {
		return false
	}
	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}
	return true
}
