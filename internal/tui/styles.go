package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EAEAEA")).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Width(16).
			Foreground(lipgloss.Color("#94A3B8"))

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("#4ECDC4"))

	entryStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedEntryStyle = entryStyle.
				Foreground(lipgloss.Color("#4ECDC4")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ADE80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			MarginTop(1)
)
