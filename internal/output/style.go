package output

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#2F71F2", Dark: "#4A90FF"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#FFA500", Dark: "#FFA500"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#FF4672"}
	ColorDim     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleActive  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Render applies style to s unless --no-color is in effect.
func Render(style lipgloss.Style, s string) string {
	if flagNoColor {
		return s
	}
	return style.Render(s)
}
