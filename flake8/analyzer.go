// Package flake8 adapts flake8's line-oriented report.
package flake8

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"github.com/elbaro/devon"
	devonzap "github.com/elbaro/devon/zap"
)

// Name is the tool tag prepended to flake8 reports.
const Name = "flake8"

// Compile-time interface verification.
var _ devon.Analyzer = (*Analyzer)(nil)

// Analyzer runs flake8 over the working directory.
type Analyzer struct {
	Runner  devon.CommandRunner
	Command string
	Args    []string
	Logger  *zap.Logger
}

// NewAnalyzer creates an analyzer invoking `flake8 .`.
func NewAnalyzer(runner devon.CommandRunner) *Analyzer {
	return &Analyzer{
		Runner:  runner,
		Command: "flake8",
		Args:    []string{"."},
	}
}

// Name returns the tool tag.
func (a *Analyzer) Name() string {
	return Name
}

// Run invokes flake8 and parses its report.
func (a *Analyzer) Run(ctx context.Context) ([]devon.Diagnostic, error) {
	out, err := a.Runner.Output(ctx, a.Command, a.Args...)
	if err != nil {
		return nil, err
	}
	diags, err := Parse(out)
	if err != nil {
		return nil, &devon.ToolError{Tool: Name, Err: err}
	}
	devonzap.OrNop(a.Logger).Info("collected diagnostics",
		zap.String("tool", Name), zap.Int("count", len(diags)))
	return diags, nil
}

var (
	// PATH:ROW:COL: CODE MESSAGE. The path is greedy so it may contain colons.
	lineRe = regexp.MustCompile(`^(.+):(\d+):(\d+): (\S+)(?: (.*))?$`)
	codeRe = regexp.MustCompile(`^[A-Z][0-9]{3}$`)
)

// Parse decodes flake8's default output format. Blank lines are skipped.
// Rows and columns are converted from one-based to zero-based, and the
// range extends to the end of the reported row since flake8 reports a
// point rather than a span.
func Parse(data []byte) ([]devon.Diagnostic, error) {
	var diags []devon.Diagnostic
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", devon.ErrMalformedOutput, n+1, line, err)
		}
		diags = append(diags, d)
	}
	return diags, nil
}

func parseLine(line string) (devon.Diagnostic, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return devon.Diagnostic{}, fmt.Errorf("expected PATH:ROW:COL: CODE MESSAGE")
	}
	path, code, msg := m[1], m[4], m[5]

	row, err := oneBased(m[2])
	if err != nil {
		return devon.Diagnostic{}, fmt.Errorf("row: %w", err)
	}
	col, err := oneBased(m[3])
	if err != nil {
		return devon.Diagnostic{}, fmt.Errorf("column: %w", err)
	}
	if !codeRe.MatchString(code) {
		return devon.Diagnostic{}, fmt.Errorf("code %q is not a letter followed by three digits", code)
	}
	sev, err := Severity(code)
	if err != nil {
		return devon.Diagnostic{}, err
	}

	return devon.Diagnostic{
		Tool:     Name,
		File:     path,
		Severity: sev,
		Message:  msg,
		Range: devon.Range{
			Start: devon.Position{Line: row, Character: col},
			End:   devon.Position{Line: row, Character: devon.EndOfLine},
		},
		Rule: code,
	}, nil
}

// oneBased parses a one-based decimal number and returns it zero-based.
func oneBased(s string) (int, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%s is not one-based", s)
	}
	return n - 1, nil
}

// Severity maps an error code to a severity by its leading letter:
// E and F are errors, W and N warnings, C advice. See
// https://flake8.pycqa.org/en/latest/user/error-codes.html.
func Severity(code string) (devon.Severity, error) {
	if code == "" {
		return 0, fmt.Errorf("empty code")
	}
	switch code[0] {
	case 'E', 'F':
		return devon.SeverityError, nil
	case 'W', 'N':
		return devon.SeverityWarning, nil
	case 'C':
		return devon.SeverityAdvice, nil
	default:
		return 0, fmt.Errorf("unknown code prefix %q", code[:1])
	}
}
