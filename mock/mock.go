// Package mock provides function-field implementations of devon interfaces
// for tests.
package mock

import (
	"context"

	"github.com/elbaro/devon"
)

var (
	_ devon.Analyzer         = (*Analyzer)(nil)
	_ devon.CommandRunner    = (*CommandRunner)(nil)
	_ devon.Renderer         = (*Renderer)(nil)
	_ devon.Formatter        = (*Formatter)(nil)
	_ devon.Tokenizer        = (*Tokenizer)(nil)
	_ devon.LanguageDetector = (*LanguageDetector)(nil)
	_ devon.Viewer           = (*Viewer)(nil)
)

// Analyzer is a mock devon.Analyzer.
type Analyzer struct {
	NameValue string
	RunFn     func(ctx context.Context) ([]devon.Diagnostic, error)
}

func (m *Analyzer) Name() string {
	return m.NameValue
}

func (m *Analyzer) Run(ctx context.Context) ([]devon.Diagnostic, error) {
	return m.RunFn(ctx)
}

// CommandRunner is a mock devon.CommandRunner.
type CommandRunner struct {
	OutputFn func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func (m *CommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return m.OutputFn(ctx, name, args...)
}

// Renderer is a mock devon.Renderer.
type Renderer struct {
	RenderFn func(d devon.Diagnostic) (devon.Item, error)
}

func (m *Renderer) Render(d devon.Diagnostic) (devon.Item, error) {
	return m.RenderFn(d)
}

// Formatter is a mock devon.Formatter.
type Formatter struct {
	FormatFn func(r devon.Report) ([]byte, error)
}

func (m *Formatter) Format(r devon.Report) ([]byte, error) {
	return m.FormatFn(r)
}

// Tokenizer is a mock devon.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []devon.Token
}

func (m *Tokenizer) Tokenize(language, source string) []devon.Token {
	return m.TokenizeFn(language, source)
}

// LanguageDetector is a mock devon.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (m *LanguageDetector) DetectFromPath(path string) string {
	return m.DetectFromPathFn(path)
}

// Viewer is a mock devon.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, store *devon.Store) error
}

func (m *Viewer) View(ctx context.Context, store *devon.Store) error {
	return m.ViewFn(ctx, store)
}
