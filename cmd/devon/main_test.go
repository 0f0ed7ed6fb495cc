package main_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/elbaro/devon"
	main "github.com/elbaro/devon/cmd/devon"
	"github.com/elbaro/devon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzerOf(name string, diags ...devon.Diagnostic) *mock.Analyzer {
	return &mock.Analyzer{
		NameValue: name,
		RunFn: func(_ context.Context) ([]devon.Diagnostic, error) {
			return diags, nil
		},
	}
}

var oneRowRenderer = &mock.Renderer{
	RenderFn: func(d devon.Diagnostic) (devon.Item, error) {
		return devon.NewItem([]byte(d.Message)), nil
	},
}

func TestApp_Run_EmptyOutputShowsEmptyStore(t *testing.T) {
	t.Parallel()

	var got *devon.Store
	app := &main.App{
		Analyzers: []devon.Analyzer{analyzerOf("pyright"), analyzerOf("flake8")},
		Renderer:  oneRowRenderer,
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, store *devon.Store) error {
				got = store
				return nil
			},
		},
	}

	require.NoError(t, app.Run(context.Background()))
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}

func TestApp_Run_PassesItemsInOrder(t *testing.T) {
	t.Parallel()

	var got *devon.Store
	app := &main.App{
		Analyzers: []devon.Analyzer{
			analyzerOf("pyright", devon.Diagnostic{Message: "p"}),
			analyzerOf("flake8", devon.Diagnostic{Message: "f"}),
		},
		Renderer: oneRowRenderer,
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, store *devon.Store) error {
				got = store
				return nil
			},
		},
	}

	require.NoError(t, app.Run(context.Background()))
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "p", string(got.Item(0).Lines[0]))
	assert.Equal(t, "f", string(got.Item(1).Lines[0]))
	assert.Equal(t, []int{0, 1}, got.LineOffsets())
}

func TestApp_Run_MissingToolNeverOpensViewer(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Analyzers: []devon.Analyzer{
			&mock.Analyzer{
				NameValue: "pyright",
				RunFn: func(_ context.Context) ([]devon.Diagnostic, error) {
					return nil, &devon.ToolError{Tool: "pyright", Err: devon.ErrToolMissing}
				},
			},
			&mock.Analyzer{
				NameValue: "flake8",
				RunFn: func(_ context.Context) ([]devon.Diagnostic, error) {
					t.Error("flake8 should not run after pyright failed")
					return nil, nil
				},
			},
		},
		Renderer: oneRowRenderer,
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *devon.Store) error {
				t.Error("viewer should not be opened")
				return nil
			},
		},
	}

	err := app.Run(context.Background())
	require.ErrorIs(t, err, devon.ErrToolMissing)
	assert.Contains(t, err.Error(), "pyright")
}

func TestApp_Run_RenderFailureIsFatal(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Analyzers: []devon.Analyzer{analyzerOf("flake8", devon.Diagnostic{File: "gone.py"})},
		Renderer: &mock.Renderer{
			RenderFn: func(_ devon.Diagnostic) (devon.Item, error) {
				return devon.Item{}, devon.ErrSourceUnreadable
			},
		},
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *devon.Store) error {
				t.Error("viewer should not be opened")
				return nil
			},
		},
	}

	assert.ErrorIs(t, app.Run(context.Background()), devon.ErrSourceUnreadable)
}

func TestApp_Run_ViewerError(t *testing.T) {
	t.Parallel()

	viewErr := errors.New("no terminal")
	app := &main.App{
		Renderer: oneRowRenderer,
		Viewer: &mock.Viewer{
			ViewFn: func(_ context.Context, _ *devon.Store) error {
				return viewErr
			},
		},
	}

	assert.ErrorIs(t, app.Run(context.Background()), viewErr)
}

func TestAnalyzers(t *testing.T) {
	t.Parallel()

	var calls []string
	runner := &mock.CommandRunner{
		OutputFn: func(_ context.Context, name string, args ...string) ([]byte, error) {
			calls = append(calls, name)
			return nil, nil
		},
	}

	t.Run("default order", func(t *testing.T) {
		analyzers := main.Analyzers(devon.DefaultConfig(), runner, nil)
		require.Len(t, analyzers, 2)
		assert.Equal(t, "pyright", analyzers[0].Name())
		assert.Equal(t, "flake8", analyzers[1].Name())
	})

	t.Run("disabled tool is skipped", func(t *testing.T) {
		cfg := devon.DefaultConfig()
		cfg.Pyright.Disabled = true
		analyzers := main.Analyzers(cfg, runner, nil)
		require.Len(t, analyzers, 1)
		assert.Equal(t, "flake8", analyzers[0].Name())
	})

	t.Run("custom command", func(t *testing.T) {
		calls = nil
		cfg := devon.DefaultConfig()
		cfg.Flake8.Command = "python3"
		cfg.Flake8.Args = []string{"-m", "flake8"}
		for _, a := range main.Analyzers(cfg, runner, nil) {
			_, err := a.Run(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"pyright", "python3"}, calls)
	})
}

func TestNewApp_EndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = y\n"), 0o644))

	cfg := devon.DefaultConfig()
	cfg.Pyright.Disabled = true
	cfg.Flake8.Command = "sh"
	cfg.Flake8.Args = []string{"-c", `echo "$0:1:5: F821 undefined name 'y'"`, path}

	app, err := main.NewApp(cfg, nil, 80, 24)
	require.NoError(t, err)

	var got *devon.Store
	app.Viewer = &mock.Viewer{
		ViewFn: func(_ context.Context, store *devon.Store) error {
			got = store
			return nil
		},
	}
	require.NoError(t, app.Run(context.Background()))

	require.Equal(t, 1, got.Len())
	lines := got.Item(0).Lines
	require.NotEmpty(t, lines)
	assert.Equal(t, "Error: [flake8] F821", ansi.Strip(string(lines[0])))
	assert.Equal(t, " 1 │ x = y", ansi.Strip(string(lines[3])))
	assert.Empty(t, lines[len(lines)-1])
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	t.Parallel()

	cmd := main.NewRootCommand()
	cmd.SetArgs([]string{"src"})
	assert.Error(t, cmd.Execute())
}
