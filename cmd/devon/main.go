// Command devon runs pyright and flake8 in the working directory and browses
// their diagnostics in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/elbaro/devon"
	"github.com/elbaro/devon/bubbletea"
	"github.com/elbaro/devon/chroma"
	"github.com/elbaro/devon/flake8"
	"github.com/elbaro/devon/fs"
	"github.com/elbaro/devon/lipgloss"
	"github.com/elbaro/devon/pyright"
	"github.com/elbaro/devon/subprocess"
	"github.com/elbaro/devon/toml"
	devonzap "github.com/elbaro/devon/zap"
)

// Fallback terminal size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

var errorPrefix = color.New(color.FgRed, color.Bold)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		errorPrefix.Fprint(os.Stderr, "error:")
		fmt.Fprintln(os.Stderr, " "+err.Error())
		os.Exit(1)
	}
}

// NewRootCommand returns the devon command. It takes no arguments.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devon",
		Short: "Browse pyright and flake8 diagnostics",
		Long: `devon runs pyright and flake8 over the current directory and shows every
diagnostic as a source excerpt. Use up/down to move, q, Esc or Ctrl-C to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	path := fs.ConfigPath()
	cfg, err := toml.Load(path)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if env := os.Getenv(devonzap.EnvLevel); env != "" {
		level = env
	}
	logger, err := devonzap.NewLogger(level, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("loaded config", zap.String("path", path), zap.String("log_level", level))

	width, height := terminalSize()
	app, err := NewApp(cfg, logger, width, height)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// terminalSize returns the size of the terminal on stdout.
func terminalSize() (int, int) {
	fd, err := safecast.Conv[int](os.Stdout.Fd())
	if err != nil {
		return defaultWidth, defaultHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// App collects diagnostics and hands them to the viewer.
type App struct {
	Analyzers []devon.Analyzer
	Renderer  devon.Renderer
	Viewer    devon.Viewer
	Logger    *zap.Logger
}

// NewApp wires the production components from cfg.
func NewApp(cfg devon.Config, logger *zap.Logger, width, height int) (*App, error) {
	logger = devonzap.OrNop(logger)

	opts := []lipgloss.Option{
		lipgloss.WithWidth(width),
		lipgloss.WithTabWidth(cfg.TabWidth),
	}
	if cfg.Syntax {
		theme := lipgloss.DefaultTheme()
		tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			lipgloss.WithTheme(theme),
			lipgloss.WithTokenizer(tokenizer),
			lipgloss.WithLanguageDetector(chroma.NewDetector()),
		)
	}

	viewer := bubbletea.NewViewer(width, height)
	viewer.Logger = logger

	return &App{
		Analyzers: Analyzers(cfg, subprocess.NewRunner(logger), logger),
		Renderer:  fs.NewRenderer(lipgloss.NewFormatter(opts...)),
		Viewer:    viewer,
		Logger:    logger,
	}, nil
}

// Analyzers returns the enabled analyzers in display order: pyright, then
// flake8.
func Analyzers(cfg devon.Config, runner devon.CommandRunner, logger *zap.Logger) []devon.Analyzer {
	var analyzers []devon.Analyzer
	if !cfg.Pyright.Disabled {
		a := pyright.NewAnalyzer(runner)
		a.Command = cfg.Pyright.Command
		a.Args = cfg.Pyright.Args
		a.Logger = logger
		analyzers = append(analyzers, a)
	}
	if !cfg.Flake8.Disabled {
		a := flake8.NewAnalyzer(runner)
		a.Command = cfg.Flake8.Command
		a.Args = cfg.Flake8.Args
		a.Logger = logger
		analyzers = append(analyzers, a)
	}
	return analyzers
}

// Run runs every analyzer, renders the diagnostics and blocks in the viewer
// until the user quits. Any startup failure is returned before the terminal
// is touched.
func (a *App) Run(ctx context.Context) error {
	logger := devonzap.OrNop(a.Logger)

	store, err := devon.Aggregate(ctx, a.Renderer, a.Analyzers...)
	if err != nil {
		return err
	}
	logger.Info("rendered diagnostics",
		zap.Int("items", store.Len()),
		zap.Int("rows", store.TotalLines()),
	)
	return a.Viewer.View(ctx, store)
}
