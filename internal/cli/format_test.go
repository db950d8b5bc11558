package cli

import (
	"math"
	"strings"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{2, "$2.00"},
		{102, "$102.00"},
		{104.04, "$104.04"},
		{2.0400000000000005, "$2.04"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-5, "-$5.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := FormatCurrency(math.Inf(1)); got != "$+Inf" {
		t.Errorf("FormatCurrency(+Inf) = %q", got)
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{102, "$102.00"},
		{9999.99, "$9,999.99"},
		{12345, "$12.3K"},
		{1234567, "$1.23M"},
		{2.5e9, "$2.50B"},
		{7e12, "$7.00T"},
		{-2e6, "-$2.00M"},
	}
	for _, tt := range tests {
		if got := FormatCompactCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCompactCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(1, 2); got != "1% (×2)" {
		t.Errorf("FormatRate = %q", got)
	}
	if got := FormatRateLong(1, 2); got != "1% (applied twice)" {
		t.Errorf("FormatRateLong = %q", got)
	}
	if got := FormatRateLong(0.5, 3); got != "0.5% (applied 3 times)" {
		t.Errorf("FormatRateLong(0.5, 3) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDaysAndMultiple(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(1500); got != "1,500 days" {
		t.Errorf("FormatDays(1500) = %q", got)
	}
	if got := FormatMultiple(1.81136); got != "1.81x" {
		t.Errorf("FormatMultiple = %q", got)
	}
	if got := FormatMultiple(12345.4); got != "12,345x" {
		t.Errorf("FormatMultiple(12345.4) = %q", got)
	}
	if got := FormatMultiple(math.Inf(1)); got != "+Infx" {
		t.Errorf("FormatMultiple(+Inf) = %q", got)
	}
	if got := FormatMultiple(1e300); strings.HasPrefix(got, "-") || !strings.HasSuffix(got, "x") {
		t.Errorf("FormatMultiple(1e300) = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Daily Breakdown",
		Headers: []string{"Day", "Amount"},
		Rows: [][]string{
			{"1", "$102.00"},
			SeparatorRow,
			{"2", "$104.04"},
		},
	})

	for _, want := range []string{"Daily Breakdown", "Day", "Amount", "$102.00", "$104.04", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// title + top + header + header rule + 2 rows + separator + bottom
	if lines := strings.Count(out, "\n"); lines != 8 {
		t.Errorf("table has %d lines, want 8:\n%s", lines, out)
	}

	if RenderTable(Table{}) != "" {
		t.Error("empty table should render as empty string")
	}
}

func TestRenderSparkline(t *testing.T) {
	out := RenderSparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 0)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("sparkline %q should span lowest to highest block", out)
	}

	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	if got := len([]rune(RenderSparkline(values, 20))); got < 20 {
		t.Errorf("downsampled sparkline has %d runes, want at least 20", got)
	}

	if RenderSparkline(nil, 10) != "" {
		t.Error("empty sparkline should be empty")
	}
}
