package main

import (
	"fmt"

	"measurekit/internal/config"
	"measurekit/internal/kv"
	"measurekit/internal/prefs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow external edits to the preferences file",
		Long: `Watches the YAML defaults file and prints the preferences each time
another process changes it. Runs until interrupted. Requires the file backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Store.Backend != config.BackendFile {
				return fmt.Errorf("watch needs the %q store backend, configured: %q",
					config.BackendFile, opts.cfg.Store.Backend)
			}

			file, err := kv.NewFile(opts.cfg.StorePath())
			if err != nil {
				return err
			}
			defer file.Close()

			store := prefs.New(file)
			out := cmd.OutOrStdout()
			w, err := kv.NewWatcher(file, func() {
				s := store.Load()
				opts.logger.Info("preferences changed", zap.Any("settings", s))
				fmt.Fprintf(out, "distance=%s temperature=%s emoji=%t\n",
					s.DistanceUnit, s.TemperatureUnit, s.EmojiVisible)
			})
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Stop()

			ctx := cmd.Context()
			if err := w.Start(ctx); err != nil {
				return fmt.Errorf("failed to watch %s: %w", file.Path(), err)
			}
			<-ctx.Done()
			return nil
		},
	}
}
