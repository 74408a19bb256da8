package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattsolo1/servr/cli"
	"github.com/mattsolo1/servr/internal/launcher"
	"github.com/mattsolo1/servr/pkg/pathutil"
	"github.com/mattsolo1/servr/pkg/server"
	"github.com/mattsolo1/servr/tui/theme"
	"github.com/spf13/cobra"
)

// NewStartCmd creates the `start` command: headless start of a managed
// server for a directory.
func NewStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <dir>",
		Short: "Start a server for a folder and open it in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return handler.Handle(err)
			}

			abs, err := pathutil.Expand(args[0])
			if err != nil {
				return handler.Handle(err)
			}

			port, _ := cmd.Flags().GetInt("port")
			if port == 0 {
				port = cfg.Server.Port
			}
			noBrowser, _ := cmd.Flags().GetBool("no-browser")

			l := launcher.New(launcher.Options{Config: cfg})
			res, err := l.Start(abs, port, !noBrowser)
			if err != nil {
				return handler.Handle(err)
			}

			t := theme.DefaultTheme
			fmt.Printf("%s %s\n", t.Success.Render("Serving"), abs)
			fmt.Printf("%s %s\n", t.Muted.Render("URL:"), t.Accent.Render(res.URL))
			fmt.Println(t.Muted.Render("Press Ctrl-C to stop"))

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			for {
				select {
				case <-stop:
					if err := l.Stop(); err != nil {
						return handler.Handle(err)
					}
					fmt.Println(t.Info.Render("Server stopped"))
					return nil

				case ev := <-l.Events():
					switch ev.Type {
					case server.EventStarted:
						fmt.Println(t.Success.Render(fmt.Sprintf("Server running on port %d", ev.Port)))
					case server.EventStopped:
						fmt.Println(t.Info.Render("Server stopped"))
						return nil
					case server.EventFailed:
						return handler.Handle(fmt.Errorf("server exited: %w", ev.Err))
					}
				}
			}
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Port to serve on (default from servr.yml)")
	cmd.Flags().Bool("no-browser", false, "Do not open the browser after start")
	return cmd
}
