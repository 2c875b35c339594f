package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)
