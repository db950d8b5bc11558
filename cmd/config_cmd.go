// Package cmd implements the whalecalc CLI commands.
package cmd

import (
	"fmt"

	"github.com/moonwhale/whalecalc/internal/cli"
	"github.com/moonwhale/whalecalc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default principal: %s\n", cli.FormatCurrency(cfg.General.DefaultPrincipal))
	fmt.Printf("    Default days:      %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Show all days:     %v\n", cfg.General.ShowAllDays)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	if o, err := config.LoadEnv(); err == nil && o.Theme != "" {
		fmt.Printf("    Override: %s (WHALECALC_THEME)\n", o.Theme)
	}
	fmt.Println()

	fmt.Println("  Run `whalecalc setup` to reconfigure.")
	return nil
}
