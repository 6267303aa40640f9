package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI. The four bar colors map to the
// cursor roles: current/pivot, compared, other highlighted and untouched.
type Theme struct {
	Name      string
	Current   lipgloss.Color
	Compare   lipgloss.Color
	Highlight lipgloss.Color
	Normal    lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Current:   lipgloss.Color("#ff4444"), // Red
		Compare:   lipgloss.Color("#44dd44"), // Green
		Highlight: lipgloss.Color("#ffa500"), // Orange
		Normal:    lipgloss.Color("#4488ff"), // Blue
		Accent:    lipgloss.Color("#00ccff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Current:   lipgloss.Color("#ff00ff"), // Magenta
		Compare:   lipgloss.Color("#00ffff"), // Cyan
		Highlight: lipgloss.Color("#ffff00"), // Yellow
		Normal:    lipgloss.Color("#5f5fd7"),
		Accent:    lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Current:   lipgloss.Color("#ffffff"),
		Compare:   lipgloss.Color("#88ff88"),
		Highlight: lipgloss.Color("#ffff00"),
		Normal:    lipgloss.Color("#00aa00"), // Green phosphor
		Accent:    lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Current:   lipgloss.Color("#ff4444"),
		Compare:   lipgloss.Color("#00ff88"),
		Highlight: lipgloss.Color("#ffd700"),
		Normal:    lipgloss.Color("#0077be"), // Ocean blue
		Accent:    lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Current:   lipgloss.Color("#ff4757"),
		Compare:   lipgloss.Color("#5fd068"),
		Highlight: lipgloss.Color("#feca57"),
		Normal:    lipgloss.Color("#ff9ff3"), // Pink
		Accent:    lipgloss.Color("#ff6b6b"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the classic scheme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
