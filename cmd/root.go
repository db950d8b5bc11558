package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/projection"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal float64
	flagDays      int
	flagAll       bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "whalecalc",
	Short: "Moon Whale Intl compound growth calculator",
	Long: "Project how a principal grows under a fixed 1% return applied twice daily.\n" +
		"Run without a subcommand for a summary, or `whalecalc tui` for the interactive calculator.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagPrincipal, "principal", "p", 0, "Starting amount in dollars (default from config)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Number of days to project (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagAll, "all", "a", false, "Show every day instead of the last 5")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices on stderr")
}

// inputs are the resolved, clamped calculator inputs for a command.
type inputs struct {
	cfg       config.Config
	principal float64
	days      int
	showAll   bool
}

// resolveInputs merges flags over config defaults and clamps the result.
// A config parse error is reported and defaults are used.
func resolveInputs(cmd *cobra.Command) inputs {
	cfg, err := config.Load()
	if err != nil {
		notice("Config unavailable, using defaults: %v", err)
	}

	in := inputs{
		cfg:       cfg,
		principal: cfg.General.DefaultPrincipal,
		days:      cfg.General.DefaultDays,
		showAll:   cfg.General.ShowAllDays,
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		in.principal = flagPrincipal
		if p := projection.ClampPrincipal(flagPrincipal); p != flagPrincipal {
			notice("Principal %s clamped to %s (allowed %s to %s)", strconv.FormatFloat(flagPrincipal, 'f', -1, 64),
				cli.FormatCurrency(p), cli.FormatCurrency(projection.MinPrincipal), cli.FormatCurrency(projection.MaxPrincipal))
			in.principal = p
		}
	}
	if flags.Changed("days") {
		in.days = flagDays
		if d := projection.ClampDays(flagDays); d != flagDays {
			notice("Days %d clamped to %d (allowed %d to %s)", flagDays, d, projection.MinDays, cli.FormatNumber(projection.MaxDays))
			in.days = d
		}
	}
	if flags.Changed("all") {
		in.showAll = flagAll
	}

	return in
}

// notice prints a user-facing message to stderr unless --quiet is set.
func notice(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf(format, args...)))
}

func runSummary(cmd *cobra.Command, _ []string) error {
	in := resolveInputs(cmd)

	results := projection.Calculate(in.principal, in.days)
	summary, ok := projection.Summarize(in.principal, results)
	if !ok {
		fmt.Println("\n  Nothing to project.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MOON WHALE INTL  %s", cli.FormatDays(in.days))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Final Results",
		Rows:  summaryRows(summary),
	}))
	fmt.Println()

	window := projection.Window(results, in.showAll)
	title := "Daily Breakdown"
	if !in.showAll && len(window) < len(results) {
		title = fmt.Sprintf("Daily Breakdown  last %d of %s", len(window), cli.FormatDays(len(results)))
	}
	fmt.Print(cli.RenderTable(breakdownTable(title, window)))

	fmt.Println()
	if in.showAll || len(window) == len(results) {
		fmt.Println(cli.RenderHint("Run `whalecalc tui` for the interactive calculator."))
	} else {
		fmt.Println(cli.RenderHint("Use --all or `whalecalc daily` to show every day."))
	}
	fmt.Println()

	return nil
}

func summaryRows(s projection.Summary) [][]string {
	return [][]string{
		{"Initial Investment", cli.FormatCurrency(s.Principal)},
		{"Final Amount", cli.FormatCurrency(s.FinalAmount)},
		{"Total Profit", cli.RenderProfit(cli.FormatCurrency(s.TotalProfit))},
		cli.SeparatorRow,
		{"Final Daily Return", cli.FormatCurrency(s.FinalDailyReturn)},
		{"Daily Percentage", cli.FormatRateLong(s.Percentage, projection.ApplicationsPerDay)},
	}
}

func breakdownTable(title string, rows []projection.DailyResult) cli.Table {
	t := cli.Table{
		Title:   title,
		Headers: []string{"Day", "Amount", "%", "Return"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			cli.FormatNumber(int64(r.Day)),
			cli.FormatCurrency(r.Amount),
			cli.FormatRate(r.Percentage, projection.ApplicationsPerDay),
			cli.FormatCurrency(r.DailyReturn),
		})
	}
	return t
}
