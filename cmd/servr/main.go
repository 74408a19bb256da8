package main

import (
	"os"

	"github.com/mattsolo1/servr/cli"
	"github.com/mattsolo1/servr/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"servr",
		"Serve a local folder over HTTP with one keystroke",
	)
	rootCmd.RunE = func(c *cobra.Command, args []string) error {
		// Bare `servr` launches the TUI.
		return cmd.RunTUI(c)
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewTuiCmd())
	rootCmd.AddCommand(cmd.NewStartCmd())
	rootCmd.AddCommand(cmd.NewServeCmd())
	rootCmd.AddCommand(cmd.NewRecentCmd())
	rootCmd.AddCommand(cmd.NewLsCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
