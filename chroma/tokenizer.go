// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/elbaro/devon"
)

// Compile-time interface verification.
var (
	_ devon.Tokenizer        = (*Tokenizer)(nil)
	_ devon.LanguageDetector = (*Detector)(nil)
)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc func(chroma.TokenType) devon.Style
}

// NewTokenizer creates a new chroma-based tokenizer that styles tokens with
// styleFunc.
func NewTokenizer(styleFunc func(chroma.TokenType) devon.Style) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: nil style function")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source code into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []devon.Token {
	if source == "" {
		return []devon.Token{}
	}
	tokens, ok := t.tokenize(language, source)
	if !ok {
		return nil
	}
	return tokens
}

// TokenizeLines tokenizes source as a whole and splits the result per line,
// so constructs spanning lines (block comments, triple-quoted strings) keep
// their style on every line.
func (t *Tokenizer) TokenizeLines(language, source string) [][]devon.Token {
	if source == "" {
		return [][]devon.Token{}
	}
	tokens, ok := t.tokenize(language, source)
	if !ok {
		return nil
	}

	lines := [][]devon.Token{nil}
	for _, tok := range tokens {
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], devon.Token{Text: part, Style: tok.Style})
			}
		}
	}
	if strings.HasSuffix(source, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (t *Tokenizer) tokenize(language, source string) ([]devon.Token, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, false
	}

	var tokens []devon.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, devon.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	// Some lexers append a newline the source did not have.
	if !strings.HasSuffix(source, "\n") && len(tokens) > 0 {
		last := &tokens[len(tokens)-1]
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text == "" {
			tokens = tokens[:len(tokens)-1]
		}
	}
	return tokens, true
}

// StyleFromPalette returns a style function mapping chroma token types to
// palette colors.
func StyleFromPalette(p devon.Palette) func(chroma.TokenType) devon.Style {
	return func(tt chroma.TokenType) devon.Style {
		// Use direct type comparison for specific types,
		// then fall through to category checks for broader matches.
		switch tt {
		case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
			chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved,
			chroma.KeywordType:
			return devon.Style{Foreground: string(p.Keyword), Bold: true}

		case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
			return devon.Style{Foreground: string(p.Builtin)}

		case chroma.NameFunction, chroma.NameFunctionMagic:
			return devon.Style{Foreground: string(p.Function)}

		case chroma.OperatorWord:
			return devon.Style{Foreground: string(p.Keyword), Bold: true}
		}

		switch {
		case tt.InCategory(chroma.Comment):
			return devon.Style{Foreground: string(p.Comment)}
		case tt.InSubCategory(chroma.LiteralString):
			return devon.Style{Foreground: string(p.String)}
		case tt.InSubCategory(chroma.LiteralNumber):
			return devon.Style{Foreground: string(p.Number)}
		case tt.InCategory(chroma.Operator):
			return devon.Style{Foreground: string(p.Operator)}
		case tt.InCategory(chroma.Name):
			return devon.Style{Foreground: string(p.Name)}
		default:
			return devon.Style{}
		}
	}
}

// Detector picks a chroma lexer from a file name.
type Detector struct{}

// NewDetector creates a new file-name based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the chroma language name for path, or "" if no
// lexer matches.
func (d *Detector) DetectFromPath(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
