// Package styles defines shared lipgloss styles for the TUI and CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/backlog/internal/catalog"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87")
	errorColor     = lipgloss.Color("#AF5F5F")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints, due dates and completed rows
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	DoneStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Strikethrough(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// Category returns a bold style in the category's color. Unknown categories
// fall back to SubtleStyle.
func Category(id catalog.CategoryID) lipgloss.Style {
	c, ok := catalog.LookupCategory(id)
	if !ok {
		return SubtleStyle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Color))
}

// Priority returns a style in the priority's color.
func Priority(p catalog.Priority) lipgloss.Style {
	level, ok := p.Level()
	if !ok {
		return SubtleStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(level.Color))
}
