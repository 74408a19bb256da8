package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mattsolo1/servr/pkg/projects"
	"github.com/mattsolo1/servr/tui/theme"
	"github.com/spf13/cobra"
)

// NewRecentCmd creates the `recent` command with its `clear` subcommand.
func NewRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently served folders, most used first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit == 0 {
				limit = cfg.Recent.Limit
			}

			store := projects.NewDefault()
			entries := store.TopN(limit)

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			if len(entries) == 0 {
				fmt.Println(theme.DefaultTheme.Muted.Render("No recent projects"))
				return nil
			}

			t := theme.DefaultTheme
			for _, e := range entries {
				fmt.Printf("%s %s\n", t.Normal.Render(e.Path),
					t.Muted.Render(fmt.Sprintf("×%d", e.Count)))
			}
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 0, "Maximum entries to show (default from servr.yml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the recent-projects history",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects.NewDefault().Clear()
			fmt.Println("Recent projects cleared")
			return nil
		},
	})

	return cmd
}
