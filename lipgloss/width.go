package lipgloss

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 4

// DisplayWidth calculates the display width of a string, expanding tabs to
// the next multiple of tabWidth. A tabWidth below 1 uses DefaultTabWidth.
func DisplayWidth(s string, tabWidth int) int {
	return displayWidthFrom(s, 0, tabWidth)
}

// displayWidthFrom calculates the display width of a string starting from
// a given column position. Tab expansion depends on the current column, so
// concatenated pieces must be measured from where the previous one ended.
func displayWidthFrom(s string, startCol, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	col := startCol
	for _, r := range s {
		if r == '\t' {
			col = ((col / tabWidth) + 1) * tabWidth
		} else {
			col += runewidth.RuneWidth(r)
		}
	}
	return col
}

// ExpandTabs replaces tabs with spaces, starting at column startCol, and
// returns the expanded text with the column it ends at.
func ExpandTabs(s string, startCol, tabWidth int) (string, int) {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsRune(s, '\t') {
		return s, displayWidthFrom(s, startCol, tabWidth)
	}
	var b strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			next := ((col / tabWidth) + 1) * tabWidth
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String(), col
}
