package cmd

import (
	"errors"
	"fmt"

	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/tui"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set default principal, days, table mode, and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		notice("Existing config unreadable, starting from defaults: %v", err)
	}
	theme.SetActive(config.Theme(cfg))

	cfg, err = tui.RunSetup(cfg)
	if errors.Is(err, tui.ErrSetupAborted) {
		fmt.Println("\n  Setup cancelled, nothing saved.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `whalecalc setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
