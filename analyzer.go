package devon

import "context"

// Analyzer runs an external analysis tool and normalizes its output.
type Analyzer interface {
	// Name returns the tool tag, e.g. "flake8".
	Name() string

	// Run invokes the tool over the working directory and returns its
	// diagnostics in the order the tool reported them.
	Run(ctx context.Context) ([]Diagnostic, error)
}

// CommandRunner executes a subprocess and returns its standard output.
type CommandRunner interface {
	// Output runs name with args to completion. A non-zero exit status is
	// not an error; failing to launch the command is.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
