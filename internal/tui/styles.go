package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#2563EB")
	secondaryColor = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().Bold(true)

	flagStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	messageStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			MarginTop(1)
)
