package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the viewer. Bindings match bubbletea
// key strings exactly, so a key held with Alt ("alt+q") never matches.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous diagnostic"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next diagnostic"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q", "Q"),
			key.WithHelp("q", "quit"),
		),
	}
}
