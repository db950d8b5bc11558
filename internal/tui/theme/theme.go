// Package theme defines color themes for the whalecalc TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Selected row, focused input
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Focused card / summary card border
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Highlight     lipgloss.Color // Summary card gradient end
	Green         lipgloss.Color // Profit, returns
	Orange        lipgloss.Color // Warnings
}

// Active is the currently selected theme.
var Active = MoonWhale

// MoonWhale is the default indigo-to-purple theme.
var MoonWhale = Theme{
	Name:          "moon-whale",
	Background:    lipgloss.Color("#0F0E1A"),
	Surface:       lipgloss.Color("#1A1930"),
	SurfaceBright: lipgloss.Color("#2A2850"),
	Border:        lipgloss.Color("#3B3A5C"),
	BorderAccent:  lipgloss.Color("#6366F1"),
	TextDim:       lipgloss.Color("#5C5B7A"),
	TextMuted:     lipgloss.Color("#9A98B8"),
	TextPrimary:   lipgloss.Color("#F4F3FF"),
	Accent:        lipgloss.Color("#818CF8"),
	AccentBright:  lipgloss.Color("#A5B4FC"),
	Highlight:     lipgloss.Color("#A855F7"),
	Green:         lipgloss.Color("#34D399"),
	Orange:        lipgloss.Color("#F59E0B"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Highlight:     lipgloss.Color("#8B7EC8"),
	Green:         lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#DA702C"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Highlight:     lipgloss.Color("#BB9AF7"),
	Green:         lipgloss.Color("#9ECE6A"),
	Orange:        lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("5"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("5"),
	AccentBright:  lipgloss.Color("13"),
	Highlight:     lipgloss.Color("13"),
	Green:         lipgloss.Color("2"),
	Orange:        lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{MoonWhale, FlexokiDark, TokyoNight, Terminal}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ByName returns a theme by its name, defaulting to MoonWhale.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return MoonWhale
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
