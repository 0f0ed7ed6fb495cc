// Package subprocess runs external analyzers and captures their output.
package subprocess

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/elbaro/devon"
	devonzap "github.com/elbaro/devon/zap"
)

// Compile-time interface verification.
var _ devon.CommandRunner = (*Runner)(nil)

// Runner executes commands in a working directory.
type Runner struct {
	// Dir is the working directory; empty means the current directory.
	Dir string

	Logger *zap.Logger
}

// NewRunner creates a runner for the current directory.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{Logger: logger}
}

// Output runs the command to completion and returns its standard output.
// Standard error is discarded and a non-zero exit status is not an error,
// since analyzers exit non-zero whenever they report problems. A command
// that cannot be found yields a *devon.ToolError wrapping
// devon.ErrToolMissing.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	log := devonzap.OrNop(r.Logger).With(zap.String("tool", name))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("starting analyzer", zap.Strings("args", args))
	start := time.Now()
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		// Exit status only says whether problems were found.
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return nil, &devon.ToolError{Tool: name, Err: devon.ErrToolMissing}
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		return nil, &devon.ToolError{Tool: name, Err: err}
	}

	log.Debug("analyzer finished",
		zap.Int("exit", cmd.ProcessState.ExitCode()),
		zap.Int("stdout_bytes", stdout.Len()),
		zap.Int("stderr_bytes", stderr.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return stdout.Bytes(), nil
}
