package bubbletea_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/elbaro/devon"
	"github.com/muesli/termenv"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// asciiRenderer creates a lipgloss renderer that emits no styling.
func asciiRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
}

// storeOfHeights builds a store whose i-th item has heights[i] rows named
// "item<i>.<row>".
func storeOfHeights(heights ...int) *devon.Store {
	items := make([]devon.Item, len(heights))
	for i, h := range heights {
		lines := make([][]byte, h)
		for r := range lines {
			lines[r] = []byte(fmt.Sprintf("item%d.%d", i, r))
		}
		items[i] = devon.Item{Lines: lines}
	}
	return devon.NewStore(items)
}
