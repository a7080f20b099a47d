package menu

import "github.com/charmbracelet/lipgloss"

// Styles groups the text styles used by the menu.
type Styles struct {
	Title   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
