package lipgloss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/elbaro/devon"
)

// Compile-time interface verification.
var _ devon.Formatter = (*Formatter)(nil)

// lineTokenizer is implemented by tokenizers that can highlight a multi-line
// excerpt as a whole.
type lineTokenizer interface {
	TokenizeLines(language, source string) [][]devon.Token
}

// Formatter draws a report as a framed source excerpt:
//
//	Error: [flake8] F821
//	   ╭─[a.py:1:1]
//	   │
//	 1 │ x = y
//	   │ ┬
//	   │ ╰── undefined name 'x'
//	───╯
type Formatter struct {
	renderer         *lipgloss.Renderer
	palette          devon.Palette
	width            int
	tabWidth         int
	tokenizer        devon.Tokenizer
	languageDetector devon.LanguageDetector
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithRenderer sets the lipgloss renderer, which decides the color profile.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(f *Formatter) {
		f.renderer = r
	}
}

// WithTheme sets the colors.
func WithTheme(t devon.Theme) Option {
	return func(f *Formatter) {
		f.palette = t.Palette()
	}
}

// WithWidth truncates every row to w cells. Zero disables truncation.
func WithWidth(w int) Option {
	return func(f *Formatter) {
		f.width = w
	}
}

// WithTabWidth sets the tab stop interval for excerpt lines.
func WithTabWidth(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.tabWidth = n
		}
	}
}

// WithTokenizer enables syntax highlighting of excerpt lines.
func WithTokenizer(t devon.Tokenizer) Option {
	return func(f *Formatter) {
		f.tokenizer = t
	}
}

// WithLanguageDetector sets how the excerpt language is picked.
func WithLanguageDetector(d devon.LanguageDetector) Option {
	return func(f *Formatter) {
		f.languageDetector = d
	}
}

// NewFormatter creates a formatter with the default theme and renderer.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		renderer: lipgloss.DefaultRenderer(),
		palette:  DefaultTheme().Palette(),
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format draws r. The block always ends with a newline.
func (f *Formatter) Format(r devon.Report) ([]byte, error) {
	if r.Source == nil {
		return nil, errors.New("report has no source")
	}
	if r.Start < 0 || r.End < r.Start || r.End > len(r.Source.Content) {
		return nil, fmt.Errorf("span %d..%d of %d bytes: %w", r.Start, r.End, len(r.Source.Content), devon.ErrPositionOutOfRange)
	}

	src := r.Source
	start := src.Position(r.Start)
	end := src.Position(r.End)
	// A span ending at the start of a line ends on the previous one.
	if end.Line > start.Line && end.Character == 0 {
		end = devon.Position{Line: end.Line - 1, Character: src.LineEnd(end.Line-1) - src.LineStart(end.Line-1)}
	}
	end.Character = min(end.Character, len(src.Line(end.Line)))
	start.Character = min(start.Character, len(src.Line(start.Line)))

	digits := len(strconv.Itoa(end.Line + 1))
	s := f.styles(r.Severity)
	excerpt := f.excerpt(src, start.Line, end.Line)

	pad := strings.Repeat(" ", digits+2)
	gutter := func(n int) string {
		if n < 0 {
			return s.margin.Render(pad + "│")
		}
		return s.margin.Render(fmt.Sprintf(" %*d │", digits, n+1))
	}

	var rows []string
	rows = append(rows, s.kind.Render(r.Severity.String()+":")+" "+r.Header)
	rows = append(rows, s.margin.Render(pad+"╭─[")+fmt.Sprintf("%s:%d:%d", src.Path, start.Line+1, start.Character+1)+s.margin.Render("]"))
	rows = append(rows, gutter(-1))

	startCol := f.column(src.Line(start.Line), start.Character)
	if start.Line == end.Line {
		endCol := f.column(src.Line(end.Line), end.Character)
		rows = append(rows, gutter(start.Line)+" "+excerpt[0])
		rows = append(rows, gutter(-1)+" "+strings.Repeat(" ", startCol)+s.underline.Render(underline(endCol-startCol, true)))
		rows = append(rows, labelRows(gutter(-1), startCol, s.underline.Render("╰──"), r.Label)...)
	} else {
		lineEnd := f.column(src.Line(start.Line), len(src.Line(start.Line)))
		rows = append(rows, gutter(start.Line)+" "+excerpt[0])
		rows = append(rows, gutter(-1)+" "+strings.Repeat(" ", startCol)+s.underline.Render(underline(lineEnd-startCol, false)))
		if end.Line-start.Line > 1 {
			rows = append(rows, s.margin.Render(pad)+s.skipped.Render("┆"))
		}
		endCol := f.column(src.Line(end.Line), end.Character)
		rows = append(rows, gutter(end.Line)+" "+excerpt[len(excerpt)-1])
		rows = append(rows, gutter(-1)+" "+s.underline.Render(underline(endCol, true)))
		rows = append(rows, labelRows(gutter(-1), 0, s.underline.Render("╰──"), r.Label)...)
	}
	rows = append(rows, s.margin.Render(strings.Repeat("─", digits+2)+"╯"))

	var b strings.Builder
	for _, row := range rows {
		if f.width > 0 {
			row = ansi.Truncate(row, f.width, "")
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// labelRows attaches label at column col. Each line of a multi-line label
// gets its own framed row, aligned with the text after the hook.
func labelRows(margin string, col int, hook, label string) []string {
	indent := strings.Repeat(" ", col)
	parts := strings.Split(strings.ReplaceAll(label, "\r\n", "\n"), "\n")
	rows := make([]string, 0, len(parts))
	rows = append(rows, margin+" "+indent+hook+" "+parts[0])
	for _, part := range parts[1:] {
		rows = append(rows, margin+" "+indent+"    "+part)
	}
	return rows
}

// underline returns a marker n cells wide, at least one. With a head the
// first cell is ┬.
func underline(n int, head bool) string {
	n = max(n, 1)
	if head {
		return "┬" + strings.Repeat("─", n-1)
	}
	return strings.Repeat("─", n)
}

// column converts a byte column of line into a display column.
func (f *Formatter) column(line []byte, byteCol int) int {
	return DisplayWidth(string(line[:byteCol]), f.tabWidth)
}

// excerpt returns the styled text of lines first through last, tabs
// expanded.
func (f *Formatter) excerpt(src *devon.Source, first, last int) []string {
	raw := make([]string, 0, last-first+1)
	for n := first; n <= last; n++ {
		raw = append(raw, string(src.Line(n)))
	}

	tokens := f.tokenize(src.Path, raw)
	out := make([]string, len(raw))
	for i, line := range raw {
		if i >= len(tokens) || tokens[i] == nil {
			out[i], _ = ExpandTabs(line, 0, f.tabWidth)
			continue
		}
		var b strings.Builder
		col := 0
		for _, tok := range tokens[i] {
			var text string
			text, col = ExpandTabs(tok.Text, col, f.tabWidth)
			b.WriteString(f.tokenStyle(tok.Style).Render(text))
		}
		out[i] = b.String()
	}
	return out
}

// tokenize highlights lines when a tokenizer and a language are available.
// It returns nil otherwise.
func (f *Formatter) tokenize(path string, lines []string) [][]devon.Token {
	if f.tokenizer == nil || f.languageDetector == nil {
		return nil
	}
	lang := f.languageDetector.DetectFromPath(path)
	if lang == "" {
		return nil
	}
	if lt, ok := f.tokenizer.(lineTokenizer); ok {
		return lt.TokenizeLines(lang, strings.Join(lines, "\n"))
	}
	out := make([][]devon.Token, len(lines))
	for i, line := range lines {
		out[i] = f.tokenizer.Tokenize(lang, line)
	}
	return out
}

func (f *Formatter) tokenStyle(s devon.Style) lipgloss.Style {
	style := f.renderer.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

type reportStyles struct {
	kind      lipgloss.Style
	margin    lipgloss.Style
	underline lipgloss.Style
	skipped   lipgloss.Style
}

func (f *Formatter) styles(sev devon.Severity) reportStyles {
	color := lipgloss.Color(f.palette.ForSeverity(sev))
	return reportStyles{
		kind:      f.renderer.NewStyle().Foreground(color).Bold(true),
		margin:    f.renderer.NewStyle().Foreground(lipgloss.Color(f.palette.Margin)),
		underline: f.renderer.NewStyle().Foreground(color),
		skipped:   f.renderer.NewStyle().Foreground(lipgloss.Color(f.palette.Skipped)),
	}
}
