package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for all TUI colors.
var (
	parchment = lipgloss.Color("#F5E6C8") // Warm parchment - primary text
	inkGold   = lipgloss.Color("#D9A441") // Gold accent - headers, selection
	sageGreen = lipgloss.Color("#9CC09C") // Muted green - success states
	slateGray = lipgloss.Color("#7A8490") // Slate gray - secondary text
	emberRed  = lipgloss.Color("#D97B66") // Muted red - errors
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(inkGold).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(slateGray).
			Padding(0, 1)

	logStyle = lipgloss.NewStyle().
			Foreground(parchment)

	promptStyle = lipgloss.NewStyle().
			Foreground(sageGreen).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(slateGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(emberRed)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inkGold).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(sageGreen).
			Padding(0, 1)
)
