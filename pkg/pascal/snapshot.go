// Package pascal provides the core Delphi/Pascal syntax tree representation.
// It defines a lossless, immutable view of a source file: a classified token
// stream covering every byte, and an AST referencing token spans.
package pascal

// FileSnapshot is an immutable, lossless view of a Pascal source file at a
// specific time. It holds the raw content, line metadata, token stream, and
// AST root.
type FileSnapshot struct {
	Path    string
	Content []byte
	Lines   []LineInfo
	Tokens  []Token
	Root    *Node

	// ErrorRanges records the byte ranges where the parser entered error
	// recovery, in source order, merged when adjacent.
	ErrorRanges []SourceRange
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	StartOffset  int
	NewlineStart int
	EndOffset    int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not tokenize or parse.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:  path,
		Content: content,
		Lines: BuildLines(content),
	}
}

// AddErrorRange records a parser-error-recovery range, merging it with the
// previous range when they are adjacent or overlapping.
func (f *FileSnapshot) AddErrorRange(r SourceRange) {
	if len(f.ErrorRanges) > 0 {
		last := &f.ErrorRanges[len(f.ErrorRanges)-1]
		if r.StartOffset <= last.EndOffset {
			if r.EndOffset > last.EndOffset {
				last.EndOffset = r.EndOffset
			}
			return
		}
	}
	f.ErrorRanges = append(f.ErrorRanges, r)
}

// InErrorRange reports whether offset falls inside any recorded error range.
func (f *FileSnapshot) InErrorRange(offset int) bool {
	for _, r := range f.ErrorRanges {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}
