package fs

import (
	"fmt"

	"github.com/elbaro/devon"
)

// Compile-time interface verification.
var _ devon.Renderer = (*Renderer)(nil)

// Renderer renders diagnostics against the files they refer to.
type Renderer struct {
	Formatter devon.Formatter
}

// NewRenderer creates a renderer that draws reports with f.
func NewRenderer(f devon.Formatter) *Renderer {
	return &Renderer{Formatter: f}
}

// Render reads the diagnostic's file, resolves its range to byte offsets
// and formats the report. Any failure is fatal for the diagnostic.
func (r *Renderer) Render(d devon.Diagnostic) (devon.Item, error) {
	src, err := ReadSource(d.File)
	if err != nil {
		return devon.Item{}, err
	}

	start, err := src.Offset(d.Range.Start)
	if err != nil {
		return devon.Item{}, fmt.Errorf("range start: %w", err)
	}
	end, err := src.Offset(d.Range.End)
	if err != nil {
		return devon.Item{}, fmt.Errorf("range end: %w", err)
	}
	if d.Range.End.Character == devon.EndOfLine {
		end = max(end, start)
	}
	if end < start {
		return devon.Item{}, fmt.Errorf("%s: range end before start: %w", d.File, devon.ErrPositionOutOfRange)
	}

	block, err := r.Formatter.Format(devon.Report{
		Source:   src,
		Severity: d.Severity,
		Start:    start,
		End:      end,
		Header:   d.Header(),
		Label:    d.Message,
	})
	if err != nil {
		return devon.Item{}, fmt.Errorf("format %s: %w", d.File, err)
	}
	return devon.NewItem(block), nil
}
