package devon

import (
	"fmt"
	"sort"
)

// Source is the content of a source file together with its line index.
type Source struct {
	Path    string
	Content []byte

	starts []int // byte offset at which each line begins
}

// NewSource indexes content. Lines are separated by '\n'; a file ending in
// a newline has a final empty line.
func NewSource(path string, content []byte) *Source {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Source{Path: path, Content: content, starts: starts}
}

// LineCount returns the number of lines in the source.
func (s *Source) LineCount() int {
	return len(s.starts)
}

// LineStart returns the byte offset of the first byte of line n.
func (s *Source) LineStart(n int) int {
	return s.starts[n]
}

// LineEnd returns the byte offset just past the last byte of line n, not
// counting the line terminator ("\n" or "\r\n").
func (s *Source) LineEnd(n int) int {
	end := s.rawEnd(n)
	if end > s.starts[n] && s.Content[end-1] == '\r' {
		end--
	}
	return end
}

// Line returns the bytes of line n without its terminator.
func (s *Source) Line(n int) []byte {
	return s.Content[s.starts[n]:s.LineEnd(n)]
}

// rawEnd is the offset of the '\n' ending line n, or len(Content) for the
// last line.
func (s *Source) rawEnd(n int) int {
	if n+1 < len(s.starts) {
		return s.starts[n+1] - 1
	}
	return len(s.Content)
}

// Offset resolves a position to a byte offset: the offset of the line plus
// the character offset within it. EndOfLine resolves to LineEnd.
func (s *Source) Offset(p Position) (int, error) {
	if p.Line < 0 || p.Line >= len(s.starts) {
		return 0, fmt.Errorf("%s: line %d of %d: %w", s.Path, p.Line+1, len(s.starts), ErrPositionOutOfRange)
	}
	if p.Character == EndOfLine {
		return s.LineEnd(p.Line), nil
	}
	start := s.starts[p.Line]
	if p.Character < 0 || start+p.Character > s.rawEnd(p.Line) {
		return 0, fmt.Errorf("%s:%d: column %d: %w", s.Path, p.Line+1, p.Character+1, ErrPositionOutOfRange)
	}
	return start + p.Character, nil
}

// Position converts a byte offset back into a line and byte column.
// Offsets past the end of the content are clamped to it.
func (s *Source) Position(offset int) Position {
	offset = max(0, min(offset, len(s.Content)))
	line := sort.Search(len(s.starts), func(i int) bool {
		return s.starts[i] > offset
	}) - 1
	return Position{Line: line, Character: offset - s.starts[line]}
}
