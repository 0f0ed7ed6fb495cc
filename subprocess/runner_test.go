package subprocess_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/elbaro/devon"
	"github.com/elbaro/devon/subprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
}

func TestRunner_Output(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	t.Run("captures stdout and ignores stderr and exit status", func(t *testing.T) {
		t.Parallel()

		r := subprocess.NewRunner(nil)
		out, err := r.Output(context.Background(), "sh", "-c", "echo found; echo noise >&2; exit 1")

		require.NoError(t, err)
		assert.Equal(t, "found\n", string(out))
	})

	t.Run("empty output", func(t *testing.T) {
		t.Parallel()

		r := subprocess.NewRunner(nil)
		out, err := r.Output(context.Background(), "sh", "-c", "true")

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("runs in the configured directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.py"), nil, 0o644))

		r := &subprocess.Runner{Dir: dir}
		out, err := r.Output(context.Background(), "ls")

		require.NoError(t, err)
		assert.Contains(t, string(out), "marker.py")
	})
}

func TestRunner_MissingTool(t *testing.T) {
	t.Parallel()

	r := subprocess.NewRunner(nil)
	_, err := r.Output(context.Background(), "devon-no-such-analyzer", ".")

	require.ErrorIs(t, err, devon.ErrToolMissing)
	var toolErr *devon.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "devon-no-such-analyzer", toolErr.Tool)
}

func TestRunner_CanceledContext(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := subprocess.NewRunner(nil)
	_, err := r.Output(ctx, "sh", "-c", "sleep 5")

	require.ErrorIs(t, err, context.Canceled)
}
