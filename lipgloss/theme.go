// Package lipgloss draws diagnostic reports with charmbracelet/lipgloss.
package lipgloss

import "github.com/elbaro/devon"

// Compile-time interface verification.
var _ devon.Theme = Theme{}

// Theme is a fixed devon.Palette.
type Theme struct {
	palette devon.Palette
}

// Palette returns the theme's colors.
func (t Theme) Palette() devon.Palette {
	return t.palette
}

// DefaultTheme returns the One Dark inspired theme.
func DefaultTheme() Theme {
	return Theme{palette: devon.Palette{
		Error:   "#e06c75",
		Warning: "#e5c07b",
		Advice:  "#56b6c2",
		Margin:  "#5c6370",
		Skipped: "#5c6370",

		Keyword:  "#c678dd",
		Comment:  "#5c6370",
		String:   "#98c379",
		Number:   "#d19a66",
		Operator: "#56b6c2",
		Builtin:  "#e5c07b",
		Function: "#61afef",
		Name:     "#e06c75",
	}}
}

// TestTheme returns a theme with distinct, easy to match colors.
func TestTheme() Theme {
	return Theme{palette: devon.Palette{
		Error:   "#ff0000",
		Warning: "#ffff00",
		Advice:  "#00ffff",
		Margin:  "#808080",
		Skipped: "#404040",

		Keyword:  "#ff00ff",
		Comment:  "#010101",
		String:   "#00ff00",
		Number:   "#0000ff",
		Operator: "#020202",
		Builtin:  "#030303",
		Function: "#040404",
		Name:     "#050505",
	}}
}
