// Package pyright adapts the pyright type checker's JSON report.
package pyright

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/elbaro/devon"
	devonzap "github.com/elbaro/devon/zap"
)

// Name is the tool tag prepended to pyright reports.
const Name = "pyright"

// Compile-time interface verification.
var _ devon.Analyzer = (*Analyzer)(nil)

// Analyzer runs pyright with machine-readable output.
type Analyzer struct {
	Runner  devon.CommandRunner
	Command string
	Args    []string
	Logger  *zap.Logger
}

// NewAnalyzer creates an analyzer invoking `pyright --outputjson .`.
func NewAnalyzer(runner devon.CommandRunner) *Analyzer {
	return &Analyzer{
		Runner:  runner,
		Command: "pyright",
		Args:    []string{"--outputjson", "."},
	}
}

// Name returns the tool tag.
func (a *Analyzer) Name() string {
	return Name
}

// Run invokes pyright and parses its report.
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

// report mirrors the parts of `pyright --outputjson` that are used.
type report struct {
	GeneralDiagnostics []diagnostic `json:"generalDiagnostics"`
}

type diagnostic struct {
	File     string `json:"file"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Range    struct {
		Start position `json:"start"`
		End   position `json:"end"`
	} `json:"range"`
	Rule string `json:"rule"`
}

type position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Parse decodes a pyright JSON report. Empty input yields no diagnostics.
func Parse(data []byte) ([]devon.Diagnostic, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", devon.ErrMalformedOutput, err)
	}

	diags := make([]devon.Diagnostic, 0, len(r.GeneralDiagnostics))
	for i, d := range r.GeneralDiagnostics {
		sev, err := parseSeverity(d.Severity)
		if err != nil {
			return nil, fmt.Errorf("%w: diagnostic %d: %v", devon.ErrMalformedOutput, i, err)
		}
		rng := devon.Range{
			Start: devon.Position{Line: d.Range.Start.Line, Character: d.Range.Start.Character},
			End:   devon.Position{Line: d.Range.End.Line, Character: d.Range.End.Character},
		}
		if rng.End.Less(rng.Start) || rng.Start.Line < 0 || rng.Start.Character < 0 {
			return nil, fmt.Errorf("%w: diagnostic %d: invalid range %+v", devon.ErrMalformedOutput, i, rng)
		}
		diags = append(diags, devon.Diagnostic{
			Tool:     Name,
			File:     d.File,
			Severity: sev,
			Message:  d.Message,
			Range:    rng,
			Rule:     d.Rule,
		})
	}
	return diags, nil
}

func parseSeverity(s string) (devon.Severity, error) {
	switch s {
	case "error":
		return devon.SeverityError, nil
	case "warning":
		return devon.SeverityWarning, nil
	case "information":
		return devon.SeverityAdvice, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}
