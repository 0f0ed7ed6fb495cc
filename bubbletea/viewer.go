package bubbletea

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/elbaro/devon"
	"go.uber.org/zap"
)

// Compile-time interface verification.
var _ devon.Viewer = (*Viewer)(nil)

// Viewer displays a store on the alternate screen until the user quits.
// The bubbletea program puts the terminal in raw mode, hides the cursor and
// restores the terminal on every exit path, panics included.
type Viewer struct {
	Width  int
	Height int

	// Input and Output default to the process's terminal when nil.
	Input  io.Reader
	Output io.Writer

	Logger *zap.Logger
}

// NewViewer creates a viewer with an initial terminal size.
func NewViewer(width, height int) *Viewer {
	return &Viewer{Width: width, Height: height, Logger: zap.NewNop()}
}

// View implements devon.Viewer.
func (v *Viewer) View(ctx context.Context, store *devon.Store) error {
	logger := v.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if v.Input != nil {
		opts = append(opts, tea.WithInput(v.Input))
	}
	if v.Output != nil {
		opts = append(opts, tea.WithOutput(v.Output))
	}

	logger.Debug("starting viewer",
		zap.Int("items", store.Len()),
		zap.Int("rows", store.TotalLines()),
		zap.Int("width", v.Width),
		zap.Int("height", v.Height),
	)
	final, err := tea.NewProgram(NewModel(store, WithSize(v.Width, v.Height)), opts...).Run()
	if err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	if m, ok := final.(Model); ok {
		logger.Debug("viewer closed", zap.Int("selected", m.Viewport().Selected))
	}
	return nil
}
