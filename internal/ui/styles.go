package ui

import "github.com/charmbracelet/lipgloss"

// styleSet holds the lipgloss styles for the menu.
type styleSet struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
