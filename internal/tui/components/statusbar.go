package components

import (
	"strings"

	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// current state on the right.
func RenderStatusBar(width int, hints, state string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := ""
	if state != "" {
		right = state + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Hints win; state is dropped when the terminal is too narrow.
		return style.Render(left)
	}

	return style.Render(left + strings.Repeat(" ", gap) + right)
}
