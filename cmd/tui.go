package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/moonwhale/whalecalc/internal/config"
	"github.com/moonwhale/whalecalc/internal/tui"
	"github.com/moonwhale/whalecalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagDebug bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to debug.log")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	firstRun := !config.Exists()
	in := resolveInputs(cmd)
	theme.SetActive(config.Theme(in.cfg))

	if flagDebug {
		f, err := tea.LogToFile("debug.log", "whalecalc")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(in.cfg, tui.Options{
		Principal: in.principal,
		Days:      in.days,
		ShowAll:   in.showAll,
		FirstRun:  firstRun,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
