package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlahtinen/savekeeper/internal/autosave"
)

func newWatchCmd() *cobra.Command {
	var (
		interval time.Duration
		keep     int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Autosave: snapshot the game directory whenever it changes",
		Long: `Watch the live game directory and snapshot it into an auto-<timestamp>
save once it has been quiet for the autosave interval. Only the oldest
auto-* saves are pruned; named saves are never touched.

Runs until interrupted (Ctrl-C).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			wcfg := autosave.Config{
				Interval: cfg.AutosaveInterval,
				Keep:     cfg.AutosaveKeep,
			}
			if cmd.Flags().Changed("interval") {
				wcfg.Interval = interval
			}
			if cmd.Flags().Changed("keep") {
				wcfg.Keep = keep
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info().Msg("received signal, stopping...")
				cancel()
			}()

			return autosave.New(st, wcfg, logger).Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "quiet period before a snapshot is taken")
	cmd.Flags().IntVar(&keep, "keep", 10, "number of auto-* saves to retain")
	return cmd
}
