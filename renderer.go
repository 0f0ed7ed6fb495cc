package devon

// Renderer turns a diagnostic into a pre-formatted item.
type Renderer interface {
	// Render reads the file the diagnostic refers to and returns the
	// rendered report as terminal rows.
	Render(d Diagnostic) (Item, error)
}

// Report is everything a Formatter needs to draw one diagnostic.
type Report struct {
	Source   *Source
	Severity Severity
	Start    int    // byte offset, inclusive
	End      int    // byte offset, exclusive
	Header   string // report message, e.g. "[pyright] reportUndefinedVariable"
	Label    string // message attached to the underlined span
}

// Formatter draws a report as a block of bytes with ANSI styling.
type Formatter interface {
	Format(r Report) ([]byte, error)
}

// Token is a piece of source text with its syntax style.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a token is drawn.
type Style struct {
	Foreground string // hex color, empty for the terminal default
	Bold       bool
}

// Tokenizer splits source code into syntax-highlighted tokens.
type Tokenizer interface {
	// Tokenize returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector guesses a source language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns an empty string when no language matches.
	DetectFromPath(path string) string
}
