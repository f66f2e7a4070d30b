package renderer

import "github.com/charmbracelet/lipgloss"

// Dracula theme colors
const (
	ColorForeground = lipgloss.Color("#f8f8f2")
	ColorComment    = lipgloss.Color("#6272a4")
	ColorCyan       = lipgloss.Color("#8be9fd")
	ColorGreen      = lipgloss.Color("#50fa7b")
	ColorOrange     = lipgloss.Color("#ffb86c")
	ColorPurple     = lipgloss.Color("#bd93f9")
	ColorRed        = lipgloss.Color("#ff5555")
	ColorYellow     = lipgloss.Color("#f1fa8c")
)

// Colorize renders text in the given color, or returns it unchanged when colors are off
func Colorize(text string, color lipgloss.Color, bold, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}

// temperatureColor picks a bar color from a value's position (0..1) in the forecast range
func temperatureColor(position float64) lipgloss.Color {
	switch {
	case position < 0.33:
		return ColorCyan
	case position < 0.66:
		return ColorGreen
	case position < 0.85:
		return ColorOrange
	default:
		return ColorRed
	}
}
