package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Plot series colors for asciigraph
	CurveColor     asciigraph.AnsiColor
	ThresholdColor asciigraph.AnsiColor
}

// Available themes
var (
	ThemeLab = Theme{
		Name:           "lab",
		Primary:        lipgloss.Color("#00cccc"),
		Secondary:      lipgloss.Color("#ff88ff"),
		Accent:         lipgloss.Color("#ffd700"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#666688"),
		Border:         lipgloss.Color("#444466"),
		Success:        lipgloss.Color("#00ff88"),
		Warning:        lipgloss.Color("#ffaa00"),
		Error:          lipgloss.Color("#ff4444"),
		CurveColor:     asciigraph.Green,
		ThresholdColor: asciigraph.Red,
	}

	ThemeRetroGreen = Theme{
		Name:           "retro",
		Primary:        lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:      lipgloss.Color("#00cc00"),
		Accent:         lipgloss.Color("#88ff88"),
		Text:           lipgloss.Color("#00ff00"),
		Muted:          lipgloss.Color("#005500"),
		Border:         lipgloss.Color("#007700"),
		Success:        lipgloss.Color("#88ff88"),
		Warning:        lipgloss.Color("#ffff00"),
		Error:          lipgloss.Color("#ff0000"),
		CurveColor:     asciigraph.Lime,
		ThresholdColor: asciigraph.Yellow,
	}

	ThemeMinimal = Theme{
		Name:           "minimal",
		Primary:        lipgloss.Color("#ffffff"),
		Secondary:      lipgloss.Color("#cccccc"),
		Accent:         lipgloss.Color("#0088ff"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#888888"),
		Border:         lipgloss.Color("#555555"),
		Success:        lipgloss.Color("#00ff00"),
		Warning:        lipgloss.Color("#ffaa00"),
		Error:          lipgloss.Color("#ff0000"),
		CurveColor:     asciigraph.Default,
		ThresholdColor: asciigraph.Blue,
	}

	ThemeOcean = Theme{
		Name:           "ocean",
		Primary:        lipgloss.Color("#0077be"), // Ocean blue
		Secondary:      lipgloss.Color("#00a8cc"),
		Accent:         lipgloss.Color("#ffd700"),
		Text:           lipgloss.Color("#e0f0ff"),
		Muted:          lipgloss.Color("#4488aa"),
		Border:         lipgloss.Color("#225577"),
		Success:        lipgloss.Color("#00ff88"),
		Warning:        lipgloss.Color("#ffcc00"),
		Error:          lipgloss.Color("#ff4444"),
		CurveColor:     asciigraph.DeepSkyBlue,
		ThresholdColor: asciigraph.Gold,
	}

	// All available themes
	Themes = []Theme{
		ThemeLab,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the lab theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
