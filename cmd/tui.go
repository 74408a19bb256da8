package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	ctrl "github.com/mattsolo1/servr/internal/launcher"
	tuilauncher "github.com/mattsolo1/servr/tui/launcher"
	"github.com/spf13/cobra"
)

// NewTuiCmd creates the `tui` command.
func NewTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive folder/server picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTUI(cmd)
		},
	}
}

// RunTUI launches the interactive TUI. It also backs the bare `servr`
// invocation.
func RunTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l := ctrl.New(ctrl.Options{Config: cfg})

	p := tea.NewProgram(tuilauncher.New(l), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}

	// Quitting the TUI must not leave an orphaned child server behind.
	return l.Stop()
}
