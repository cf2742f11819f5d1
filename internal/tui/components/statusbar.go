package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/backlog/internal/tui/styles"
)

const separator = " • "

// StatusBar renders a one-line bar with items on the left and an optional
// indicator pinned to the right.
type StatusBar struct {
	Items []string
	Right string
}

// Render returns the bar padded to width. The right indicator is dropped when
// it does not fit.
func (s StatusBar) Render(width int) string {
	left := strings.Join(s.Items, separator)
	if s.Right == "" {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(s.Right)
	if gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left)
	}
	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + s.Right)
}
