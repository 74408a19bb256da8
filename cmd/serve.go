package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattsolo1/servr/internal/static"
	"github.com/mattsolo1/servr/logging"
	"github.com/mattsolo1/servr/pkg/inspect"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the `serve` command: the child-side static file
// server spawned by the lifecycle manager. It can also be run standalone.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a directory over HTTP (foreground)",
		Long: `Runs the static file server in the foreground until interrupted.
This is the process the launcher spawns; SIGTERM triggers a graceful shutdown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if err := inspect.Validate(abs); err != nil {
				return err
			}

			port, _ := cmd.Flags().GetInt("port")

			ctx, cancel := context.WithCancel(context.Background())
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-stop
				cancel()
			}()

			logger := logging.NewLogger("serve")
			return static.New(abs, port, logger).Run(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", 8000, "Port to bind on localhost")
	return cmd
}
