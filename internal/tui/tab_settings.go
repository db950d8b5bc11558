package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/projection"
	"github.com/moonwhale/whalecalc/internal/tui/components"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldPrincipal
	settingsFieldDays
	settingsFieldShowAll
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 40
	return ti
}

func (a App) updateSettingsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.saved = false
	a.settings.saveErr = nil

	// Booleans toggle in place.
	if a.settings.cursor == settingsFieldShowAll {
		cfg := a.cfg
		cfg.General.ShowAllDays = !cfg.General.ShowAllDays
		a.settingsCommit(cfg)
		return a, nil
	}

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldPrincipal:
		ti.Placeholder = "100 (minimum)"
		ti.SetValue(strconv.FormatFloat(a.cfg.General.DefaultPrincipal, 'f', -1, 64))
	case settingsFieldDays:
		ti.Placeholder = "30"
		ti.SetValue(strconv.Itoa(a.cfg.General.DefaultDays))
	}

	a.settings.editing = true
	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field. Invalid values are rejected
// without touching the config.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			a.settings.saved = false
			return
		}
		cfg.Appearance.Theme = val
	case settingsFieldPrincipal:
		cfg.General.DefaultPrincipal = projection.ParsePrincipal(val)
	case settingsFieldDays:
		cfg.General.DefaultDays = projection.ParseDays(val)
	}

	a.settingsCommit(cfg)
}

// settingsCommit persists cfg and applies it to the running calculator.
func (a *App) settingsCommit(cfg config.Config) {
	a.settings.saveErr = config.Save(cfg)
	a.settings.saved = a.settings.saveErr == nil
	if a.settings.saveErr != nil {
		return
	}

	prev := a.cfg
	a.cfg = cfg
	switch a.settings.cursor {
	case settingsFieldTheme:
		theme.SetActive(cfg.Appearance.Theme)
	case settingsFieldPrincipal, settingsFieldDays:
		if cfg.General != prev.General {
			a.setInputs(projection.ClampPrincipal(cfg.General.DefaultPrincipal), projection.ClampDays(cfg.General.DefaultDays))
			a.recompute()
		}
	case settingsFieldShowAll:
		a.showAll = cfg.General.ShowAllDays
		a.tableOffset = 0
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	themeValue := cfg.Appearance.Theme
	if env := config.Theme(cfg); env != cfg.Appearance.Theme {
		themeValue += fmt.Sprintf(" (overridden by WHALECALC_THEME=%s)", env)
	}

	fields := []struct {
		label string
		value string
	}{
		{"Theme", themeValue},
		{"Default Principal", cli.FormatCurrency(cfg.General.DefaultPrincipal)},
		{"Default Days", strconv.Itoa(cfg.General.DefaultDays)},
		{"Show All Days", strconv.FormatBool(cfg.General.ShowAllDays)},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			if padLen := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value); padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
		formBody.WriteString("\n")
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
		formBody.WriteString("\n")
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Themes:       ") + valueStyle.Render(strings.Join(theme.Names(), ", ")) + "\n")
	infoBody.WriteString(labelStyle.Render("Daily rate:   ") +
		valueStyle.Render(cli.FormatRateLong(projection.DailyPercentage, projection.ApplicationsPerDay)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw, true))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw, false))

	return b.String()
}
