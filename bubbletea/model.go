// Package bubbletea runs the interactive diagnostic list on a bubbletea
// program.
package bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/elbaro/devon"
)

// Compile-time interface verification.
var _ tea.Model = Model{}

const (
	// markerWidth is the width of the column left of every row.
	markerWidth = 3
	// selectedMarker marks the first row of the selected item: the glyph and
	// its space, padded to markerWidth so badges line up with unselected rows.
	selectedMarker = "▷  "
)

// Model is the bubbletea model for browsing rendered diagnostics.
type Model struct {
	viewport devon.Viewport
	keys     KeyMap
	renderer *lipgloss.Renderer
	badge    lipgloss.Style
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets the lipgloss renderer used for the index badge.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithSize sets the terminal size used before the first resize message.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.viewport.Resize(width, height)
	}
}

// NewModel creates a model over store with the first item selected.
func NewModel(store *devon.Store, opts ...Option) Model {
	m := Model{
		viewport: devon.NewViewport(store, 0, 0),
		keys:     DefaultKeyMap(),
		renderer: lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.badge = m.renderer.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("1"))
	return m
}

// Viewport returns the current selection and scroll state.
func (m Model) Viewport() devon.Viewport {
	return m.viewport
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.viewport.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.viewport.MoveDown()
		}
	case tea.WindowSizeMsg:
		m.viewport.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// View implements tea.Model. It draws at most Height rows starting at the
// first visible row. The first row of each item carries the selection
// marker and the 1-based index badge; continuation rows are indented past
// the marker column. Rows are cut at the terminal width instead of wrapping.
func (m Model) View() string {
	v := m.viewport
	store := v.Store()
	if v.Height <= 0 || store.Len() == 0 {
		return ""
	}

	rows := make([]string, 0, v.Height)
	item, sub := v.FirstItem, v.FirstSubline
	for len(rows) < v.Height && item < store.Len() {
		line := string(store.Item(item).Lines[sub])

		var row string
		if sub == 0 {
			marker := strings.Repeat(" ", markerWidth)
			if item == v.Selected {
				marker = selectedMarker
			}
			row = marker + m.badge.Render(" "+strconv.Itoa(item+1)+" ") + " " + line
		} else {
			row = strings.Repeat(" ", markerWidth) + line
		}
		if v.Width > 0 {
			row = ansi.Truncate(row, v.Width, "")
		}
		rows = append(rows, row)

		sub++
		if sub >= store.Lines(item) {
			item++
			sub = 0
		}
	}
	return strings.Join(rows, "\n")
}
