package cmd

import (
	"fmt"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/projection"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Full daily breakdown table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	in := resolveInputs(cmd)

	results := projection.Calculate(in.principal, in.days)
	if len(results) == 0 {
		fmt.Println("\n  Nothing to project.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY BREAKDOWN  %s from %s",
		cli.FormatDays(in.days), cli.FormatCurrency(in.principal))))
	fmt.Println()

	fmt.Print(cli.RenderTable(breakdownTable("", results)))

	if len(results) > 1 {
		amounts := make([]float64, len(results))
		for i, r := range results {
			amounts[i] = r.Amount
		}
		fmt.Println()
		fmt.Printf("  Balance  %s\n", cli.RenderSparkline(amounts, 60))
	}

	g := projection.GrowthOf(in.principal, results)
	fmt.Println()
	if g.Doubled {
		fmt.Println(cli.RenderHint(fmt.Sprintf("%s overall; balance doubles on day %s.",
			cli.FormatMultiple(g.Multiple), cli.FormatNumber(int64(g.DoublingDay)))))
	} else {
		fmt.Println(cli.RenderHint(fmt.Sprintf("%s overall.", cli.FormatMultiple(g.Multiple))))
	}
	fmt.Println()

	return nil
}
