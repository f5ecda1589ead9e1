package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/tasker/internal/app"
)

func newWatchCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the task table and reprint it whenever the file changes",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create the file if needed so there is something to watch.
			if _, err := e.openStore(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := app.NewWatcher(e.repository(), e.cfg.TaskFile, cmd.OutOrStdout(), e.logger, e.cfg.WatchInterval)
			e.logger.Info().Str("path", e.cfg.TaskFile).Msg("watching task file")
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&e.cfg.WatchInterval, "interval", e.cfg.WatchInterval, "minimum time between redraws")
	return cmd
}
