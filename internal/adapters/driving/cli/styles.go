package cli

import "github.com/charmbracelet/lipgloss"

// Colour palette for command output. Styles degrade to plain text when
// the output is not a terminal.
var (
	colourPrimary = lipgloss.Color("#7C3AED") // Purple
	colourMuted   = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess = lipgloss.Color("#A6E3A1") // Green
	colourWarning = lipgloss.Color("#F9E2AF") // Yellow
	colourError   = lipgloss.Color("#F38BA8") // Red
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
	successStyle = lipgloss.NewStyle().Foreground(colourSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colourWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colourError)
)

// statusStyle picks the style for a run outcome.
func statusStyle(failed, warn bool) lipgloss.Style {
	switch {
	case failed:
		return errorStyle
	case warn:
		return warningStyle
	default:
		return successStyle
	}
}
