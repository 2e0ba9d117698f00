package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Good  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)
