package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#5B8DEF")
	colorDanger = lipgloss.Color("#FF6B6B")
	colorMuted  = lipgloss.Color("#888888")
	colorFaint  = lipgloss.Color("#444444")
	colorText   = lipgloss.Color("#AAAAAA")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 2).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFaint).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorText).
			MarginTop(1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Width(12)
)
