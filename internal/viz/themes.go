package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/frame"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name        string
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	Orbit       lipgloss.Color
	Star        lipgloss.Color
	Tooltip     lipgloss.Color
	TooltipText lipgloss.Color
	Paused      lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:        "dark",
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888899"),
		Accent:      lipgloss.Color("#00ccff"),
		Border:      lipgloss.Color("#444466"),
		Orbit:       lipgloss.Color("#555555"),
		Star:        lipgloss.Color("#ffffff"),
		Tooltip:     lipgloss.Color("#222233"),
		TooltipText: lipgloss.Color("#ffffff"),
		Paused:      lipgloss.Color("#ffaa00"),
	}

	ThemeLight = Theme{
		Name:        "light",
		Background:  lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#111111"),
		Muted:       lipgloss.Color("#666666"),
		Accent:      lipgloss.Color("#0066cc"),
		Border:      lipgloss.Color("#bbbbcc"),
		Orbit:       lipgloss.Color("#aaaaaa"),
		Star:        lipgloss.Color("#888888"),
		Tooltip:     lipgloss.Color("#eeeeee"),
		TooltipText: lipgloss.Color("#111111"),
		Paused:      lipgloss.Color("#cc6600"),
	}
)

// ThemeFor returns the palette for a simulation theme.
func ThemeFor(t frame.Theme) Theme {
	if t == frame.Light {
		return ThemeLight
	}
	return ThemeDark
}
