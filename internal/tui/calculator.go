package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/projection"
	"github.com/moonwhale/whalecalc/internal/tui/components"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldPrincipal = iota
	fieldDays
	fieldCount
)

const (
	principalStep = 100.0

	// card border (2) + title + header row + header rule + footer line
	tableChrome = 6
)

var fieldLabels = [fieldCount]string{
	"Principal Amount ($)",
	"Projection Days",
}

func newInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model

	p := textinput.New()
	p.Prompt = "$ "
	p.Placeholder = "100"
	// Widest clamped value is MaxPrincipal with a full float64 fraction.
	p.CharLimit = 20
	p.Width = 20
	inputs[fieldPrincipal] = p

	d := textinput.New()
	d.Prompt = "# "
	d.Placeholder = "30"
	d.CharLimit = len(strconv.Itoa(projection.MaxDays))
	d.Width = 20
	inputs[fieldDays] = d

	return inputs
}

// setInputs writes clamped values into both fields and the app state.
func (a *App) setInputs(principal float64, days int) {
	a.principal = principal
	a.days = days
	a.inputs[fieldPrincipal].SetValue(strconv.FormatFloat(principal, 'f', -1, 64))
	a.inputs[fieldDays].SetValue(strconv.Itoa(days))
	a.inputs[fieldPrincipal].CursorEnd()
	a.inputs[fieldDays].CursorEnd()
}

// applyInputs re-parses both fields and recomputes when the clamped pair changed.
func (a *App) applyInputs() {
	p := projection.ParsePrincipal(a.inputs[fieldPrincipal].Value())
	d := projection.ParseDays(a.inputs[fieldDays].Value())
	if p == a.principal && d == a.days {
		return
	}
	a.principal, a.days = p, d
	a.recompute()
}

// normalizeField rewrites a field's text to the value actually in use.
func (a *App) normalizeField(i int) {
	switch i {
	case fieldPrincipal:
		a.inputs[i].SetValue(strconv.FormatFloat(a.principal, 'f', -1, 64))
	case fieldDays:
		a.inputs[i].SetValue(strconv.Itoa(a.days))
	}
	a.inputs[i].CursorEnd()
}

func (a *App) moveFocus(delta int) tea.Cmd {
	a.normalizeField(a.focus)
	a.inputs[a.focus].Blur()
	a.focus = (a.focus + delta + fieldCount) % fieldCount
	return a.inputs[a.focus].Focus()
}

func (a *App) stepFocused(dir int) {
	switch a.focus {
	case fieldPrincipal:
		a.setInputs(projection.ClampPrincipal(a.principal+float64(dir)*principalStep), a.days)
	case fieldDays:
		a.setInputs(a.principal, projection.ClampDays(a.days+dir))
	}
	a.inputs[a.focus].CursorEnd()
	a.recompute()
}

// isEditKey reports whether msg edits the focused field rather than
// triggering a command. Field text is limited to numeric characters.
func isEditKey(msg tea.KeyMsg, field int) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyCtrlW, tea.KeyCtrlK:
		return true
	case tea.KeyRunes:
		allowed := "0123456789,"
		if field == fieldPrincipal {
			allowed += ".$"
		}
		for _, r := range msg.Runes {
			if !strings.ContainsRune(allowed, r) {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

// updateCalculator handles calculator-tab keys. ok is false for keys the
// tab does not own.
func (a App) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if isEditKey(msg, a.focus) {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		a.applyInputs()
		return a, cmd, true
	}

	switch msg.String() {
	case "tab", "enter":
		return a, a.moveFocus(1), true
	case "shift+tab":
		return a, a.moveFocus(-1), true
	case "up", "+":
		a.stepFocused(1)
		return a, nil, true
	case "down", "-":
		a.stepFocused(-1)
		return a, nil, true
	case "a":
		a.showAll = !a.showAll
		a.tableOffset = 0
		return a, nil, true
	case "j":
		a.scrollTable(1)
		return a, nil, true
	case "k":
		a.scrollTable(-1)
		return a, nil, true
	case "ctrl+d":
		a.scrollTable(max(a.tableCapacity()/2, 1))
		return a, nil, true
	case "ctrl+u":
		a.scrollTable(-max(a.tableCapacity()/2, 1))
		return a, nil, true
	case "home":
		a.tableOffset = 0
		return a, nil, true
	case "end":
		a.tableOffset = a.maxTableOffset()
		return a, nil, true
	}
	return a, nil, false
}

// ─── Breakdown table ────────────────────────────────────────────

// visibleRows returns the rows the breakdown shows: the collapsed window,
// or a scrolled page of every day.
func (a App) visibleRows() []projection.DailyResult {
	rows := projection.Window(a.results, a.showAll)
	if !a.showAll {
		return rows
	}
	capacity := a.tableCapacity()
	start := min(a.tableOffset, len(rows))
	end := min(start+capacity, len(rows))
	return rows[start:end]
}

// tableCapacity is how many day rows fit in the breakdown card.
func (a App) tableCapacity() int {
	if a.height == 0 {
		return projection.TailSize
	}
	avail := a.contentHeight() - tableChrome
	if a.isCompactLayout() {
		avail -= lipgloss.Height(a.renderLeftColumn(a.contentWidth()))
	}
	return max(avail, projection.TailSize)
}

func (a App) maxTableOffset() int {
	if !a.showAll {
		return 0
	}
	return max(len(a.results)-a.tableCapacity(), 0)
}

func (a *App) scrollTable(delta int) {
	a.tableOffset += delta
	a.clampTableOffset()
}

func (a *App) clampTableOffset() {
	a.tableOffset = max(0, min(a.tableOffset, a.maxTableOffset()))
}

func (a App) renderBreakdown(outerWidth int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	returnStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	toggleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fill := lipgloss.NewStyle().Background(t.Surface)

	rows := a.visibleRows()
	inner := components.CardInnerWidth(outerWidth)

	type cells struct{ day, amount, pct, ret string }
	formatted := make([]cells, len(rows))
	dayW, amountW, pctW, retW := len("Day"), len("Amount"), len("%"), len("Return")
	for i, r := range rows {
		c := cells{
			day:    strconv.Itoa(r.Day),
			amount: cli.FormatCurrency(r.Amount),
			pct:    cli.FormatRate(r.Percentage, projection.ApplicationsPerDay),
			ret:    cli.FormatCurrency(r.DailyReturn),
		}
		formatted[i] = c
		dayW = max(dayW, len(c.day))
		amountW = max(amountW, lipgloss.Width(c.amount))
		pctW = max(pctW, lipgloss.Width(c.pct))
		retW = max(retW, lipgloss.Width(c.ret))
	}

	// Spread leftover width between the columns.
	spare := max((inner-dayW-amountW-pctW-retW)/3, 2)
	line := func(day, amount, pct, ret string, style, retStyle lipgloss.Style) string {
		return style.Render(fmt.Sprintf("%-*s", dayW, day)) +
			fill.Render(strings.Repeat(" ", spare)) +
			style.Render(fmt.Sprintf("%*s", amountW, amount)) +
			fill.Render(strings.Repeat(" ", spare)) +
			style.Render(fmt.Sprintf("%*s", pctW, pct)) +
			fill.Render(strings.Repeat(" ", spare)) +
			retStyle.Render(fmt.Sprintf("%*s", retW, ret))
	}

	toggle := "[a] Show All Days"
	if a.showAll {
		toggle = "[a] Show Less"
	}

	var b strings.Builder
	b.WriteString(line("DAY", "AMOUNT", "%", "RETURN", headerStyle, headerStyle))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", inner)))
	for _, c := range formatted {
		b.WriteString("\n")
		b.WriteString(line(c.day, c.amount, c.pct, c.ret, cellStyle, returnStyle))
	}
	b.WriteString("\n")

	footer := toggleStyle.Render(toggle)
	if a.showAll && len(a.results) > len(rows) && len(rows) > 0 {
		pos := fmt.Sprintf("days %d–%d of %s", rows[0].Day, rows[len(rows)-1].Day, cli.FormatNumber(int64(len(a.results))))
		gap := max(inner-lipgloss.Width(toggle)-len([]rune(pos)), 1)
		footer += fill.Render(strings.Repeat(" ", gap)) + dimStyle.Render(pos)
	}
	b.WriteString(footer)

	return components.ContentCard("Daily Breakdown", b.String(), outerWidth, false)
}

// ─── Inputs & summary ───────────────────────────────────────────

func (a App) renderInputs(outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for i := range a.inputs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		style := labelStyle
		if i == a.focus {
			style = focusLabelStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(a.inputs[i].View())
	}
	b.WriteString("\n\n")
	b.WriteString(noteStyle.Render(fmt.Sprintf("min %s principal · %d to %s days",
		cli.FormatCurrency(projection.MinPrincipal), projection.MinDays, cli.FormatNumber(projection.MaxDays))))

	return components.ContentCard("Inputs", b.String(), outerWidth, true)
}

func (a App) renderSummary(outerWidth int) string {
	if !a.hasSummary {
		return ""
	}
	s := a.summary
	return components.KeyValueCard("Final Results", []components.Row{
		{Label: "Initial Investment:", Value: cli.FormatCurrency(s.Principal)},
		{Label: "Final Amount:", Value: cli.FormatCurrency(s.FinalAmount)},
		{Label: "Total Profit:", Value: cli.FormatCurrency(s.TotalProfit)},
		{Label: "Final Daily Return:", Value: cli.FormatCurrency(s.FinalDailyReturn)},
		{Label: "Daily Percentage:", Value: cli.FormatRateLong(s.Percentage, projection.ApplicationsPerDay)},
	}, outerWidth)
}

func (a App) renderLeftColumn(outerWidth int) string {
	parts := []string{a.renderInputs(outerWidth)}
	if summary := a.renderSummary(outerWidth); summary != "" {
		parts = append(parts, summary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHowItWorks(outerWidth int) string {
	t := theme.Active
	body := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(components.CardInnerWidth(outerWidth)).
		Render(fmt.Sprintf(
			"A fixed %g%% return is applied to your current amount twice each day. "+
				"Every day you earn %g%% in total (%g%% applied two times) on your growing balance. "+
				"Returns compound daily: each day's calculation starts from the previous day's total.",
			projection.DailyPercentage, projection.DailyPercentage*projection.ApplicationsPerDay, projection.DailyPercentage))
	return components.ContentCard("How it works", body, outerWidth, false)
}

func (a App) renderCalculatorTab(cw int) string {
	var b strings.Builder

	if a.isCompactLayout() {
		b.WriteString(a.renderLeftColumn(cw))
		b.WriteString("\n")
		b.WriteString(a.renderBreakdown(cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			a.renderLeftColumn(halves[0]),
			a.renderBreakdown(halves[1]),
		}))
	}
	b.WriteString("\n")
	b.WriteString(renderHowItWorks(cw))

	return b.String()
}
