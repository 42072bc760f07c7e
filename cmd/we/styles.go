package main

import "github.com/charmbracelet/lipgloss"

// Palette of the terminal output. Colors are adaptive so reports stay
// readable on light terminals.
var (
	accent = lipgloss.AdaptiveColor{Light: "#0B5394", Dark: "#6FA8DC"}
	muted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#5C5C5C"}
	good   = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	bad    = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
)

var (
	// headerStyle labels a report section or an import module.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	wireTypeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(muted)

	groupStyle = lipgloss.NewStyle().
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(accent).
			PaddingLeft(1)

	argValueStyle = lipgloss.NewStyle().
			Foreground(good)

	acceptedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(good)

	problemStyle = lipgloss.NewStyle().
			Foreground(bad)

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)
