package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/projection"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrSetupAborted is returned by RunSetup when the user cancels the form.
var ErrSetupAborted = errors.New("setup aborted")

// setupValues holds the form bindings. It lives behind a pointer so the
// bindings survive copies of App.
type setupValues struct {
	Principal string
	Days      string
	ShowAll   bool
	Theme     string
}

func newSetupValues(cfg config.Config) *setupValues {
	v := &setupValues{
		Principal: strconv.FormatFloat(cfg.General.DefaultPrincipal, 'f', -1, 64),
		Days:      strconv.Itoa(cfg.General.DefaultDays),
		ShowAll:   cfg.General.ShowAllDays,
		Theme:     cfg.Appearance.Theme,
	}
	// The select has no option for an unknown name.
	if !theme.Valid(v.Theme) {
		v.Theme = config.DefaultTheme
	}
	return v
}

// apply writes the form values into cfg. Values are clamped, not rejected.
func (v *setupValues) apply(cfg config.Config) config.Config {
	cfg.General.DefaultPrincipal = projection.ParsePrincipal(v.Principal)
	cfg.General.DefaultDays = projection.ParseDays(v.Days)
	cfg.General.ShowAllDays = v.ShowAll
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg
}

func validatePrincipal(s string) error {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("enter a dollar amount, e.g. 1000")
	}
	return nil
}

func validateDays(s string) error {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("enter a whole number of days")
	}
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to whalecalc").
				Description(fmt.Sprintf("Moon Whale Intl compound growth calculator.\n%s daily, compounded.\n\nPick your defaults. Run `whalecalc setup` anytime to change them.",
					cli.FormatRateLong(projection.DailyPercentage, projection.ApplicationsPerDay))),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default principal ($)").
				Description(fmt.Sprintf("Kept between %s and %s.", cli.FormatCurrency(projection.MinPrincipal), cli.FormatCurrency(projection.MaxPrincipal))).
				Placeholder("100").
				Value(&v.Principal).
				Validate(validatePrincipal),
			huh.NewInput().
				Title("Default projection days").
				Placeholder("30").
				CharLimit(len(strconv.Itoa(projection.MaxDays))).
				Value(&v.Days).
				Validate(validateDays),
			huh.NewConfirm().
				Title("Show every day in the breakdown?").
				Description("Otherwise only the last five days are listed.").
				Affirmative("All days").
				Negative("Last 5").
				Value(&v.ShowAll),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// applySetup saves the completed form and loads it into the calculator.
func (a *App) applySetup() {
	cfg := a.setupVals.apply(a.cfg)
	if err := config.Save(cfg); err != nil {
		a.settings.saveErr = err
	}
	a.cfg = cfg
	theme.SetActive(config.Theme(cfg))
	a.showAll = cfg.General.ShowAllDays
	a.tableOffset = 0
	a.setInputs(cfg.General.DefaultPrincipal, cfg.General.DefaultDays)
	a.recompute()
}

func (a App) viewSetup() string {
	t := theme.Active
	form := a.setupForm.View()
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, form,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// RunSetup runs the setup form standalone and returns the updated config.
// The config is not saved.
func RunSetup(cfg config.Config) (config.Config, error) {
	v := newSetupValues(cfg)
	if err := newSetupForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cfg, ErrSetupAborted
		}
		return cfg, fmt.Errorf("setup form: %w", err)
	}
	return v.apply(cfg), nil
}
