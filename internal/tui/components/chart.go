package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values, scaled min-to-max.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := 1
		if span > 0 {
			idx = 1 + int((v-lo)/span*7)
		}
		buf.WriteRune(chartBlocks[max(1, min(idx, 8))])
	}

	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// yScale is the vertical layout of a bar chart.
type yScale struct {
	step        float64 // value per tick
	ceiling     float64 // top of the chart
	rowsPerTick int
	rows        int
	labelW      int
}

func newYScale(peak float64, height int) yScale {
	if peak <= 0 || math.IsNaN(peak) {
		peak = 1
	}

	step := chartTickStep(peak)
	maxTicks := max(height/2, 2)
	for math.Ceil(peak/step) > float64(maxTicks) {
		step *= 2
	}

	ticks := max(int(math.Ceil(peak/step)), 1)
	s := yScale{
		step:        step,
		ceiling:     float64(ticks) * step,
		rowsPerTick: max(height/ticks, 2),
	}
	s.rows = s.rowsPerTick * ticks
	s.labelW = max(len(formatChartLabel(s.ceiling))+1, 5)
	return s
}

func (s yScale) label(row int) string {
	if row%s.rowsPerTick != 0 {
		return ""
	}
	return formatChartLabel(s.step * float64(row/s.rowsPerTick))
}

// downsample picks n evenly spaced points (always keeping the last one).
func downsample(values []float64, labels []string, n int) ([]float64, []string) {
	out := make([]float64, n)
	var outLabels []string
	if len(labels) == len(values) {
		outLabels = make([]string, n)
	}
	for i := range out {
		src := i * (len(values) - 1) / max(n-1, 1)
		out[i] = values[src]
		if outLabels != nil {
			outLabels[i] = labels[src]
		}
	}
	return out, outLabels
}

// BarChart renders a bar chart of values with a dollar Y axis and optional
// X labels. Series wider than the chart are downsampled.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if !math.IsInf(v, 0) {
			peak = max(peak, v)
		}
	}
	scale := newYScale(peak, height)

	chartW := max(width-scale.labelW-1, 5)
	gap := 1
	if len(values) > chartW/3 {
		values, labels = downsample(values, labels, max(chartW/3, 2))
	}
	n := len(values)
	if n == 1 {
		gap = 0
	}
	barW := min(max((chartW-(n-1)*gap)/n, 1), 6)
	axisLen := n*barW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := scale.rows; row >= 1; row-- {
		top := scale.ceiling * float64(row) / float64(scale.rows)
		bottom := scale.ceiling * float64(row-1) / float64(scale.rows)

		barColor := color
		if float64(row)/float64(scale.rows) > 0.75 {
			barColor = t.Highlight
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", scale.labelW, scale.label(row))))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= top:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * 8)
				b.WriteString(barStyle.Render(strings.Repeat(string(chartBlocks[max(1, min(idx, 8))]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", scale.labelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", scale.labelW+1)))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// xAxisLabels lays labels under their bars, skipping any that would collide.
// The last label is always placed.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	buf := []byte(strings.Repeat(" ", axisLen))
	n := len(labels)

	place := func(pos int, lbl string) int {
		end := min(pos+len(lbl), axisLen)
		copy(buf[pos:end], lbl)
		return end
	}

	step := max(1, (n*8)/(axisLen+1))
	lastEnd := -1
	for i := 0; i < n-1; i += step {
		pos := i * (barW + gap)
		if pos <= lastEnd || pos+len(labels[i]) > axisLen {
			continue
		}
		lastEnd = place(pos, labels[i])
	}

	last := labels[n-1]
	pos := max(0, min((n-1)*(barW+gap), axisLen-len(last)))
	if pos > lastEnd {
		place(pos, last)
	}

	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a round tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))

	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	trim := func(x float64, suffix string) string {
		if x == math.Trunc(x) {
			return fmt.Sprintf("$%.0f%s", x, suffix)
		}
		return fmt.Sprintf("$%.1f%s", x, suffix)
	}

	switch {
	case v >= 1e12:
		return trim(v/1e12, "T")
	case v >= 1e9:
		return trim(v/1e9, "B")
	case v >= 1e6:
		return trim(v/1e6, "M")
	case v >= 1e3:
		return trim(v/1e3, "k")
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
