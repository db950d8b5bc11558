package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/projection"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// newTestApp builds a sized app with default config and an isolated config dir.
func newTestApp(t *testing.T, width, height int) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WHALECALC_THEME", "")

	cfg := config.DefaultConfig()
	a := NewApp(cfg, Options{
		Principal: cfg.General.DefaultPrincipal,
		Days:      cfg.General.DefaultDays,
	})
	m, _ := a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.(App)
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestNewAppClampsInputs(t *testing.T) {
	a := NewApp(config.DefaultConfig(), Options{Principal: 50, Days: 0})

	if a.principal != projection.MinPrincipal {
		t.Errorf("principal = %v, want %v", a.principal, projection.MinPrincipal)
	}
	if a.days != projection.MinDays {
		t.Errorf("days = %d, want %d", a.days, projection.MinDays)
	}
	if len(a.results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(a.results))
	}
	if got := a.inputs[fieldPrincipal].Value(); got != "100" {
		t.Errorf("principal field = %q, want %q", got, "100")
	}
	if !a.hasSummary || a.summary.FinalAmount != 102 {
		t.Errorf("summary final = %v, want 102", a.summary.FinalAmount)
	}
}

func TestTypingRecomputes(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "0")

	if got := a.inputs[fieldPrincipal].Value(); got != "1000" {
		t.Fatalf("principal field = %q, want %q", got, "1000")
	}
	if a.principal != 1000 {
		t.Errorf("principal = %v, want 1000", a.principal)
	}
	want := projection.Calculate(1000, 30)
	if a.summary.FinalAmount != want[len(want)-1].Amount {
		t.Errorf("final amount = %v, want %v", a.summary.FinalAmount, want[len(want)-1].Amount)
	}
}

func TestLettersDoNotEditInputs(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "a")

	if got := a.inputs[fieldPrincipal].Value(); got != "100" {
		t.Errorf("principal field = %q, want unchanged", got)
	}
	if !a.showAll {
		t.Error("a should toggle show-all")
	}
}

func TestBlurNormalizesClampedField(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "backspace", "backspace", "5")

	if got := a.inputs[fieldPrincipal].Value(); got != "15" {
		t.Fatalf("principal field = %q, want %q", got, "15")
	}
	if a.principal != projection.MinPrincipal {
		t.Errorf("principal = %v, want clamped to %v", a.principal, projection.MinPrincipal)
	}

	a = press(t, a, "tab")
	if a.focus != fieldDays {
		t.Errorf("focus = %d, want days field", a.focus)
	}
	if got := a.inputs[fieldPrincipal].Value(); got != "100" {
		t.Errorf("principal field after blur = %q, want %q", got, "100")
	}
}

func TestEmptyDaysClampsToOne(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "tab", "backspace", "backspace")

	if a.days != projection.MinDays {
		t.Errorf("days = %d, want %d", a.days, projection.MinDays)
	}
	if len(a.results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(a.results))
	}
}

func TestStepKeys(t *testing.T) {
	a := newTestApp(t, 160, 50)

	a = press(t, a, "up")
	if a.principal != 200 {
		t.Errorf("principal after up = %v, want 200", a.principal)
	}
	a = press(t, a, "down", "down")
	if a.principal != projection.MinPrincipal {
		t.Errorf("principal should not step below the minimum, got %v", a.principal)
	}

	a = press(t, a, "tab", "up")
	if a.days != 31 || len(a.results) != 31 {
		t.Errorf("days after up = %d (%d results), want 31", a.days, len(a.results))
	}
}

func TestShowAllToggle(t *testing.T) {
	a := newTestApp(t, 160, 50)

	if got := len(a.visibleRows()); got != projection.TailSize {
		t.Fatalf("collapsed rows = %d, want %d", got, projection.TailSize)
	}
	if first := a.visibleRows()[0].Day; first != 26 {
		t.Errorf("collapsed window starts at day %d, want 26", first)
	}

	a = press(t, a, "a")
	if got := len(a.visibleRows()); got != 30 {
		t.Errorf("expanded rows = %d, want 30", got)
	}

	a = press(t, a, "a")
	if a.showAll || a.tableOffset != 0 {
		t.Error("second toggle should collapse and reset the offset")
	}
}

func TestScrollClamps(t *testing.T) {
	a := newTestApp(t, 100, 30)
	a = press(t, a, "a", "end")

	if a.tableOffset != a.maxTableOffset() || a.tableOffset == 0 {
		t.Fatalf("end should jump to the last page, offset=%d max=%d", a.tableOffset, a.maxTableOffset())
	}
	rows := a.visibleRows()
	if rows[len(rows)-1].Day != 30 {
		t.Errorf("last visible day = %d, want 30", rows[len(rows)-1].Day)
	}

	a = press(t, a, "j")
	if a.tableOffset != a.maxTableOffset() {
		t.Error("scrolling past the end should clamp")
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t, 160, 50)

	a = press(t, a, "g")
	if a.activeTab != tabGrowth {
		t.Fatalf("activeTab = %d, want growth", a.activeTab)
	}
	a = press(t, a, "x")
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want settings", a.activeTab)
	}
	a = press(t, a, "esc")
	if a.activeTab != tabCalculator {
		t.Errorf("esc should return to the calculator, got %d", a.activeTab)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t, 160, 50)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := a.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.Quit", key)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t, 160, 50)

	a = press(t, a, "?")
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not shown")
	}
	a = press(t, a, "z")
	if a.showHelp {
		t.Error("any key should close help")
	}
}

func TestViewCalculator(t *testing.T) {
	for _, size := range [][2]int{{160, 50}, {100, 40}} {
		a := newTestApp(t, size[0], size[1])
		view := a.View()

		for _, want := range []string{"Final Results", "Initial Investment:", "$181.14", "Daily Breakdown", "Show All Days", "How it works", "1% (applied twice)"} {
			if !strings.Contains(view, want) {
				t.Errorf("%dx%d view missing %q", size[0], size[1], want)
			}
		}
		if got := lipgloss.Height(view); got != size[1] {
			t.Errorf("%dx%d view height = %d", size[0], size[1], got)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp(t, 60, 20)
	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Error("expected narrow-terminal notice")
	}
}

func TestViewGrowth(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "g")

	view := a.View()
	for _, want := range []string{"Growth Multiple", "1.81x", "Doubling Day", "Balance by Day"} {
		if !strings.Contains(view, want) {
			t.Errorf("growth view missing %q", want)
		}
	}
}

func TestSettingsToggleShowAll(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "x", "j", "j", "j", "enter")

	if !a.cfg.General.ShowAllDays || !a.showAll {
		t.Fatal("show-all setting should toggle on and apply")
	}
	if !a.settings.saved {
		t.Errorf("expected saved flag, err=%v", a.settings.saveErr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.General.ShowAllDays {
		t.Error("show-all setting not persisted")
	}
}

func TestSettingsEditDays(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "x", "j", "j", "enter")
	if !a.settings.editing {
		t.Fatal("enter should start editing")
	}

	a = press(t, a, "backspace", "backspace", "7", "enter")
	if a.settings.editing {
		t.Fatal("enter should finish editing")
	}
	if a.cfg.General.DefaultDays != 7 || a.days != 7 || len(a.results) != 7 {
		t.Errorf("days default = %d, app days = %d", a.cfg.General.DefaultDays, a.days)
	}
	if _, err := os.Stat(config.Path()); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t, 160, 50)
	a = press(t, a, "x", "enter")
	for i, n := 0, len(a.settings.input.Value()); i < n; i++ {
		a = press(t, a, "backspace")
	}
	a = press(t, a, "nope", "enter")

	if a.settings.saveErr == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	if a.cfg.Appearance.Theme != config.DefaultTheme {
		t.Errorf("theme = %q, want unchanged", a.cfg.Appearance.Theme)
	}
	if config.Exists() {
		t.Error("rejected edit should not write the config")
	}
}

func TestSetupValuesApply(t *testing.T) {
	v := &setupValues{Principal: "$50", Days: "abc", ShowAll: true, Theme: "bogus"}
	cfg := v.apply(config.DefaultConfig())

	if cfg.General.DefaultPrincipal != projection.MinPrincipal {
		t.Errorf("principal = %v, want clamped", cfg.General.DefaultPrincipal)
	}
	if cfg.General.DefaultDays != projection.MinDays {
		t.Errorf("days = %d, want %d", cfg.General.DefaultDays, projection.MinDays)
	}
	if !cfg.General.ShowAllDays {
		t.Error("show-all not applied")
	}
	if cfg.Appearance.Theme != config.DefaultTheme {
		t.Errorf("unknown theme should be ignored, got %q", cfg.Appearance.Theme)
	}

	v = &setupValues{Principal: "2,500", Days: "90", Theme: "tokyo-night"}
	cfg = v.apply(config.DefaultConfig())
	if cfg.General.DefaultPrincipal != 2500 || cfg.General.DefaultDays != 90 || cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestSetupValidators(t *testing.T) {
	for _, s := range []string{"", "100", "$1,000.50"} {
		if err := validatePrincipal(s); err != nil {
			t.Errorf("validatePrincipal(%q) = %v", s, err)
		}
	}
	if validatePrincipal("ten") == nil {
		t.Error("validatePrincipal should reject words")
	}
	if validateDays("1.5") == nil {
		t.Error("validateDays should reject fractions")
	}
}

func TestFirstRunShowsSetup(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(config.DefaultConfig(), Options{Principal: 100, Days: 30, FirstRun: true})
	if !a.needSetup || a.setupForm == nil {
		t.Fatal("first run should build the setup form")
	}

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.(App).activeTab != tabCalculator {
		t.Error("keys should go to the setup form while it is open")
	}
}

func TestDaysFieldHoldsMaxDays(t *testing.T) {
	a := NewApp(config.DefaultConfig(), Options{Principal: 100, Days: 100000})
	if a.days != projection.MaxDays {
		t.Fatalf("days = %d, want capped to %d", a.days, projection.MaxDays)
	}

	a = press(t, a, "tab", "up")
	if a.days != projection.MaxDays {
		t.Errorf("up past the cap: days = %d", a.days)
	}
	if got := a.inputs[fieldDays].Value(); got != "99999" {
		t.Errorf("days field = %q, want %q", got, "99999")
	}

	// A rejected extra digit must not change the value in use.
	a = press(t, a, "0")
	if a.days != projection.MaxDays {
		t.Errorf("days after extra digit = %d, want %d", a.days, projection.MaxDays)
	}
}

func TestPrincipalFieldHoldsMaxPrincipal(t *testing.T) {
	a := NewApp(config.DefaultConfig(), Options{Principal: 1e20, Days: 30})
	if a.principal != projection.MaxPrincipal {
		t.Fatalf("principal = %v, want capped", a.principal)
	}

	a = press(t, a, "up", "0")
	if a.principal != projection.MaxPrincipal {
		t.Errorf("principal = %v, want %v", a.principal, projection.MaxPrincipal)
	}
}

func TestGrowthTabPastFloatOverflow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(config.DefaultConfig(), Options{Principal: 100, Days: 40000})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	a = press(t, m.(App), "g")

	if view := a.View(); !strings.Contains(view, "+Infx") {
		t.Error("growth view should show an infinite multiple")
	}
}

func TestSetupValuesUnknownTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = "no-such-theme"

	if got := newSetupValues(cfg).Theme; got != config.DefaultTheme {
		t.Errorf("seeded theme = %q, want %q", got, config.DefaultTheme)
	}
}
