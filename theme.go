package devon

// Color is a hex color string such as "#e06c75".
type Color string

// Palette holds the colors used to draw reports.
type Palette struct {
	// Report chrome.
	Error   Color
	Warning Color
	Advice  Color
	Margin  Color // gutter, box drawing and line numbers
	Skipped Color // elision marker between distant lines

	// Syntax.
	Keyword  Color
	Comment  Color
	String   Color
	Number   Color
	Operator Color
	Builtin  Color
	Function Color
	Name     Color
}

// ForSeverity returns the color for a severity.
func (p Palette) ForSeverity(s Severity) Color {
	switch s {
	case SeverityError:
		return p.Error
	case SeverityWarning:
		return p.Warning
	default:
		return p.Advice
	}
}

// Theme supplies a palette.
type Theme interface {
	Palette() Palette
}
