package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/projection"
	"github.com/moonwhale/whalecalc/internal/tui/components"
	"github.com/moonwhale/whalecalc/internal/tui/theme"
)

func (a App) renderGrowthTab(cw int) string {
	t := theme.Active
	s := a.summary
	g := a.growth

	doubling := "not yet"
	doublingNote := fmt.Sprintf("within %s", cli.FormatDays(a.days))
	if g.Doubled {
		doubling = "day " + cli.FormatNumber(int64(g.DoublingDay))
		doublingNote = "balance reaches 2x"
	}

	metrics := []components.Metric{
		{Label: "Final Amount", Value: cli.FormatCompactCurrency(s.FinalAmount), Note: cli.FormatCurrency(s.FinalAmount)},
		{Label: "Total Profit", Value: cli.FormatCompactCurrency(s.TotalProfit), Note: cli.FormatDays(a.days)},
		{Label: "Growth Multiple", Value: cli.FormatMultiple(g.Multiple), Note: "final / principal"},
		{Label: "Doubling Day", Value: doubling, Note: doublingNote},
	}
	if a.isCompactLayout() {
		metrics = metrics[:3]
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	amounts := make([]float64, len(a.results))
	labels := make([]string, len(a.results))
	for i, r := range a.results {
		amounts[i] = r.Amount
		labels[i] = strconv.Itoa(r.Day)
	}

	// metric row (5) + chart card chrome (4) + x labels
	chartH := max(a.contentHeight()-12, 4)
	chart := components.BarChart(amounts, labels, t.Accent, components.CardInnerWidth(cw), chartH)

	title := fmt.Sprintf("Balance by Day · %s at %s",
		cli.FormatRate(projection.DailyPercentage, projection.ApplicationsPerDay),
		cli.FormatCurrency(a.principal))
	b.WriteString(components.ContentCard(title, chart, cw, false))

	if len(a.results) > 1 {
		tail := a.results[max(len(a.results)-components.CardInnerWidth(cw), 0):]
		returns := make([]float64, len(tail))
		for i, r := range tail {
			returns[i] = r.DailyReturn
		}
		title := "Daily Return"
		if len(tail) < len(a.results) {
			title = fmt.Sprintf("Daily Return · last %s", cli.FormatDays(len(tail)))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(title, components.Sparkline(returns, t.Green), cw, false))
	}

	return b.String()
}
