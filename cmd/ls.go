package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mattsolo1/servr/cli"
	"github.com/mattsolo1/servr/pkg/inspect"
	"github.com/mattsolo1/servr/pkg/pathutil"
	"github.com/mattsolo1/servr/tui/theme"
	"github.com/spf13/cobra"
)

// NewLsCmd creates the `ls` command: a categorized folder listing, the same
// view the TUI's contents pane shows.
func NewLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a folder's contents with type markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := pathutil.Expand(dir)
			if err != nil {
				return handler.Handle(err)
			}

			entries, err := inspect.ListContents(abs)
			if err != nil {
				return handler.Handle(err)
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			t := theme.DefaultTheme
			for _, e := range entries {
				name := e.Name
				if e.IsDir {
					name = t.Info.Render(name + "/")
				}
				fmt.Printf("%s %s\n", theme.EntryIcon(e), name)
			}

			if index, ok := inspect.FindIndexFile(abs); ok {
				fmt.Printf("\n%s %s\n", t.Muted.Render("index:"), t.Accent.Render(index))
			}
			return nil
		},
	}

	return cmd
}
