// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a dollar amount with two decimals and thousands
// separators. e.g., 1234.5 -> "$1,234.50"
func FormatCurrency(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "$" + strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v < 0 {
		return "-$" + printer.Sprintf("%.2f", -v)
	}
	return "$" + printer.Sprintf("%.2f", v)
}

// FormatCompactCurrency formats large amounts with K/M/B/T suffixes for
// narrow cells. e.g., 1234567 -> "$1.23M"
func FormatCompactCurrency(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}

	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return FormatCurrency(v)
	case abs >= 1e12:
		return fmt.Sprintf("%s$%.2fT", sign, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s$%.2fM", sign, abs/1e6)
	case abs >= 1e4:
		return fmt.Sprintf("%s$%.1fK", sign, abs/1e3)
	default:
		return FormatCurrency(v)
	}
}

// FormatRate renders a single-application percentage the way the table does.
// e.g., 1 -> "1% (×2)"
func FormatRate(pct float64, applications int) string {
	return fmt.Sprintf("%s%% (×%d)", strconv.FormatFloat(pct, 'f', -1, 64), applications)
}

// FormatRateLong is the summary-card form of FormatRate.
// e.g., 1 -> "1% (applied twice)"
func FormatRateLong(pct float64, applications int) string {
	times := fmt.Sprintf("%d times", applications)
	switch applications {
	case 1:
		times = "once"
	case 2:
		times = "twice"
	}
	return fmt.Sprintf("%s%% (applied %s)", strconv.FormatFloat(pct, 'f', -1, 64), times)
}

// FormatMultiple formats a growth multiple. e.g., 1.8114 -> "1.81x"
func FormatMultiple(m float64) string {
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return strconv.FormatFloat(m, 'f', -1, 64) + "x"
	}
	if m >= 1000 {
		return printer.Sprintf("%.0fx", m)
	}
	return fmt.Sprintf("%.2fx", m)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatDays formats a day count. e.g., 1 -> "1 day", 30 -> "30 days"
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return FormatNumber(int64(n)) + " days"
}
