// Package devon provides domain types for collecting and viewing diagnostics
// reported by external static-analysis tools.
package devon

import "bytes"

// Severity represents how serious a diagnostic is.
type Severity int

// Severity levels, in decreasing order of importance.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityAdvice
)

// String returns the report kind shown in a rendered diagnostic header.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityAdvice:
		return "Advice"
	default:
		return "Unknown"
	}
}

// EndOfLine is a Position.Character value meaning "the end of the line".
// It is resolved against the source file when the diagnostic is rendered.
const EndOfLine = -1

// Position is a zero-based location in a source file. Character counts bytes
// from the start of the line, not code points.
type Position struct {
	Line      int
	Character int
}

// Less reports whether p comes before o in (line, character) order.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range is a span between two positions. End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one problem reported by an analyzer.
type Diagnostic struct {
	Tool     string // tool tag, e.g. "pyright"
	File     string // path relative to the working directory
	Severity Severity
	Message  string
	Range    Range
	Rule     string // optional rule identifier
}

// Header returns the report message shown above the excerpt: the tool tag
// followed by the rule, if any.
func (d Diagnostic) Header() string {
	tag := "[" + d.Tool + "]"
	if d.Rule == "" {
		return tag
	}
	return tag + " " + d.Rule
}

// Item is a rendered diagnostic: an ordered sequence of pre-formatted
// terminal rows that may contain ANSI escapes. Items are never mutated.
type Item struct {
	Lines [][]byte
}

// NewItem splits a rendered block into rows on the newline byte. A trailing
// empty row produced by a terminating newline is kept.
func NewItem(block []byte) Item {
	parts := bytes.Split(block, []byte{'\n'})
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = bytes.Clone(p)
		if lines[i] == nil {
			lines[i] = []byte{}
		}
	}
	return Item{Lines: lines}
}
