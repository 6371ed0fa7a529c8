package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
	Warn string
	Info string
	// Exhausted marks skip entries that ran out of steps.
	Exhausted string
}

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"default", "orca", "mono"}

// palette is a set of 256-color codes: primary, success, warning, error, muted.
type palette [5]string

func newTheme(name string, p palette, icons ThemeIcons) Theme {
	fg := func(c string) lipgloss.Style {
		if c == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		Name:    name,
		Primary: fg(p[0]),
		Success: fg(p[1]),
		Warning: fg(p[2]),
		Error:   fg(p[3]),
		Muted:   fg(p[4]),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   icons,
	}
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return newTheme("default",
		palette{"39", "34", "214", "196", "242"},
		ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●", Exhausted: "⏱"})
}

// OrcaTheme returns a muted theme for long CI logs.
func OrcaTheme() Theme {
	return newTheme("orca",
		palette{"75", "108", "179", "167", "245"},
		ThemeIcons{Pass: "✓", Fail: "✗", Warn: "!", Info: "·", Exhausted: "~"})
}

// MonoTheme returns a monochrome theme (no colors, ASCII icons).
func MonoTheme() Theme {
	return newTheme("mono",
		palette{},
		ThemeIcons{Pass: "+", Fail: "x", Warn: "!", Info: "*", Exhausted: "~"})
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
// noColor forces MonoTheme regardless of name.
func ThemeByName(name string, noColor bool) Theme {
	if noColor {
		return MonoTheme()
	}
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
