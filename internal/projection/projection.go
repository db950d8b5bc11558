// Package projection computes day-by-day compound growth under the fixed
// twice-daily return rule.
package projection

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// DailyPercentage is the nominal rate of a single application, in percent.
	DailyPercentage = 1.0
	// ApplicationsPerDay is how many times DailyPercentage is applied each day.
	// Both applications are one additive step on the pre-update balance.
	ApplicationsPerDay = 2

	// MinPrincipal and MinDays are the input floors enforced by callers.
	MinPrincipal = 100.0
	MinDays      = 1

	// MaxPrincipal and MaxDays cap user input so every accepted value fits
	// the TUI fields. Calculate itself takes any value.
	MaxPrincipal = 1e12
	MaxDays      = 99999

	// TailSize is how many trailing days the collapsed table shows.
	TailSize = 5
)

// DailyResult is the balance after one day of growth.
type DailyResult struct {
	Day         int
	Amount      float64
	Percentage  float64
	DailyReturn float64
}

// Calculate projects principal forward for the given number of days.
// It performs no validation: days <= 0 yields an empty projection and any
// principal, including negative or non-finite ones, is used as given.
func Calculate(principal float64, days int) []DailyResult {
	results := make([]DailyResult, 0, max(days, 0))
	current := principal
	rate := DailyPercentage / 100

	for day := 1; day <= days; day++ {
		dailyReturn := current * rate * ApplicationsPerDay
		current += dailyReturn

		results = append(results, DailyResult{
			Day:         day,
			Amount:      current,
			Percentage:  DailyPercentage,
			DailyReturn: dailyReturn,
		})
	}

	return results
}

// Summary is the final-result view of a projection.
type Summary struct {
	Principal        float64
	Days             int
	FinalAmount      float64
	TotalProfit      float64
	FinalDailyReturn float64
	Percentage       float64
}

// Summarize derives the final result from the last entry.
// It returns false when the projection is empty.
func Summarize(principal float64, results []DailyResult) (Summary, bool) {
	if len(results) == 0 {
		return Summary{Principal: principal}, false
	}
	last := results[len(results)-1]
	return Summary{
		Principal:        principal,
		Days:             last.Day,
		FinalAmount:      last.Amount,
		TotalProfit:      last.Amount - principal,
		FinalDailyReturn: last.DailyReturn,
		Percentage:       last.Percentage,
	}, true
}

// Window returns the rows the breakdown table shows: every day when showAll
// is set, otherwise the last TailSize days.
func Window(results []DailyResult, showAll bool) []DailyResult {
	if showAll || len(results) <= TailSize {
		return results
	}
	return results[len(results)-TailSize:]
}

// Growth holds derived growth metrics for a projection.
type Growth struct {
	Multiple    float64 // final amount / principal
	DoublingDay int     // first day the balance reached 2x principal
	Doubled     bool
}

// GrowthOf computes growth metrics. Multiple is zero when principal is zero.
func GrowthOf(principal float64, results []DailyResult) Growth {
	var g Growth
	if len(results) == 0 {
		return g
	}
	if principal != 0 {
		g.Multiple = results[len(results)-1].Amount / principal
	}
	if principal <= 0 {
		return g
	}
	for _, r := range results {
		if r.Amount >= 2*principal {
			g.DoublingDay = r.Day
			g.Doubled = true
			break
		}
	}
	return g
}

// ClampPrincipal bounds p to [MinPrincipal, MaxPrincipal]. Non-finite values
// clamp to the minimum.
func ClampPrincipal(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return MinPrincipal
	}
	return min(max(MinPrincipal, p), MaxPrincipal)
}

// ClampDays bounds d to [MinDays, MaxDays].
func ClampDays(d int) int {
	return min(max(MinDays, d), MaxDays)
}

// ParsePrincipal parses user-entered principal text and clamps it.
// A leading "$" and "," separators are accepted. Empty or invalid text
// yields MinPrincipal; numbers too large to parse yield MaxPrincipal.
func ParsePrincipal(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) && v > 0 {
		return MaxPrincipal
	}
	if err != nil {
		return MinPrincipal
	}
	return ClampPrincipal(v)
}

// ParseDays parses user-entered day-count text and clamps it.
// Empty or invalid text yields MinDays.
func ParseDays(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	if errors.Is(err, strconv.ErrRange) {
		// Atoi saturates out-of-range input.
		return ClampDays(v)
	}
	if err != nil {
		return MinDays
	}
	return ClampDays(v)
}
