package pascal

// SourceRange represents a half-open byte range [StartOffset, EndOffset) in
// the source content.
type SourceRange struct {
	StartOffset int
	EndOffset   int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Overlaps returns true if r and other share at least one byte.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.StartOffset < other.EndOffset && other.StartOffset < r.EndOffset
}

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// SourceRange returns the byte range for this node.
// Returns an empty range if the node has no associated file or tokens.
func (n *Node) SourceRange() SourceRange {
	if n.File == nil || n.FirstToken < 0 || n.LastToken < 0 {
		return SourceRange{}
	}

	tokens := n.File.Tokens
	if n.FirstToken >= len(tokens) || n.LastToken >= len(tokens) {
		return SourceRange{}
	}

	return SourceRange{
		StartOffset: tokens[n.FirstToken].StartOffset,
		EndOffset:   tokens[n.LastToken].EndOffset,
	}
}

// Text returns the source text for this node.
// Returns nil if the node has no associated file.
func (n *Node) Text() []byte {
	if n.File == nil {
		return nil
	}
	r := n.SourceRange()
	if r.StartOffset < 0 || r.EndOffset > len(n.File.Content) {
		return nil
	}
	return n.File.Content[r.StartOffset:r.EndOffset]
}
