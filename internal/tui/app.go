// Package tui provides the interactive Bubble Tea calculator for whalecalc.
package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/projection"
	"github.com/moonwhale/whalecalc/internal/tui/components"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabCalculator = iota
	tabGrowth
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160

	minContentHeight = 5
)

// Options are the starting inputs for the calculator.
type Options struct {
	Principal float64
	Days      int
	ShowAll   bool
	FirstRun  bool // show the setup form before the calculator
}

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Inputs and the values they were last clamped to
	inputs    [fieldCount]textinput.Model
	focus     int
	principal float64
	days      int

	// Projection state, replaced wholesale by recompute
	results    []projection.DailyResult
	summary    projection.Summary
	hasSummary bool
	growth     projection.Growth

	// Breakdown table
	showAll     bool
	tableOffset int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates a new TUI app model. Inputs are clamped before the first
// projection is computed.
func NewApp(cfg config.Config, opts Options) App {
	a := App{
		cfg:     cfg,
		showAll: opts.ShowAll,
	}
	a.inputs = newInputs()
	a.setInputs(projection.ClampPrincipal(opts.Principal), projection.ClampDays(opts.Days))
	a.inputs[fieldPrincipal].Focus()
	a.recompute()

	if opts.FirstRun {
		a.needSetup = true
		a.setupVals = newSetupValues(cfg)
		a.setupForm = newSetupForm(a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		textinput.Blink,
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute replaces the projection and everything derived from it.
func (a *App) recompute() {
	a.results = projection.Calculate(a.principal, a.days)
	a.summary, a.hasSummary = projection.Summarize(a.principal, a.results)
	a.growth = projection.GrowthOf(a.principal, a.results)
	a.clampTableOffset()
	log.Printf("recompute principal=%.2f days=%d final=%.2f", a.principal, a.days, a.summary.FinalAmount)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(min(msg.Width, 70)).WithHeight(msg.Height)
		}
		a.clampTableOffset()
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabCalculator:
			if m, cmd, ok := a.updateCalculator(msg); ok {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, ok := a.updateSettingsNav(msg); ok {
				return m, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "esc":
			a.activeTab = tabCalculator
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks) to whatever has focus.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabCalculator {
			a.scrollTable(-1)
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabCalculator {
			a.scrollTable(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) contentHeight() int {
	// tab bar + status bar
	return max(a.height-2, minContentHeight)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.viewSetup()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  whalecalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Calculator", [][2]string{
			{"Tab S-Tab", "Switch input"},
			{"0-9 .", "Edit focused input"},
			{"↑ ↓", "Step principal ±100 / days ±1"},
			{"a", "Show all days / show less"},
			{"j k", "Scroll breakdown"},
			{"^d ^u", "Half-page scroll"},
			{"Home End", "First / last day"},
		}},
		{"General", [][2]string{
			{"c g x", "Calculator / Growth / Settings"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◐ Keyboard Shortcuts"))
	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(sectionStyle.Render(s.title))
		for _, kb := range s.bindings {
			fmt.Fprintf(&b, "\n  %s  %s",
				keyStyle.Render(fmt.Sprintf("%-10s", kb[0])),
				descStyle.Render(kb[1]))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	contentH := a.contentHeight()

	header := components.RenderTabBar(a.activeTab, w)

	var content, hints string
	switch a.activeTab {
	case tabCalculator:
		content = a.renderCalculatorTab(cw)
		hints = "[tab]input  [a]ll days  [j/k]scroll  [?]help  [q]uit"
	case tabGrowth:
		content = a.renderGrowthTab(cw)
		hints = "[c]alculator  [?]help  [q]uit"
	case tabSettings:
		content = a.renderSettingsTab(cw)
		hints = "[j/k]navigate  [enter]edit  [esc]back  [q]uit"
	}

	state := fmt.Sprintf("%s · %s", cli.FormatCurrency(a.principal), cli.FormatDays(a.days))
	statusBar := components.RenderStatusBar(w, hints, state)

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
