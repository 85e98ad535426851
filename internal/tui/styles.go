package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/quickie/internal/config"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// paneTheme carries the config-derived colors applied to the workspace panes.
// It is built once when a screen is created, so settings changed afterwards
// only affect screens created later.
type paneTheme struct {
	background lipgloss.Color
	editorBg   lipgloss.Color
	terminalBg lipgloss.Color
	accent     lipgloss.Color
	titleAlign lipgloss.Position
}

func themeFromSettings(s config.Settings) paneTheme {
	return paneTheme{
		background: lipgloss.Color(s.BackgroundColor),
		editorBg:   lipgloss.Color(s.TextareaBgColor),
		terminalBg: lipgloss.Color(s.TerminalBgColor),
		accent:     lipgloss.Color(s.AccentColor),
		titleAlign: titleAlignPosition(s.BorderTitleAlign),
	}
}

// titleAlignPosition maps the persisted alignment value to a lipgloss position.
// Unknown values fall back to the default alignment.
func titleAlignPosition(align string) lipgloss.Position {
	switch align {
	case "left":
		return lipgloss.Left
	case "center":
		return lipgloss.Center
	default:
		return lipgloss.Right
	}
}

// renderPaneTitle places a pane title inside the given width honoring the
// configured alignment
func renderPaneTitle(width int, align lipgloss.Position, title string) string {
	return lipgloss.PlaceHorizontal(width, align, styleTitle.Render(title))
}

// paneBorder returns the border style for a workspace pane, highlighting it
// with the accent color when focused
func paneBorder(theme paneTheme, focused bool) lipgloss.Style {
	color := lipgloss.TerminalColor(colorGray)
	if focused {
		color = theme.accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
