package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"measurekit/internal/config"
	"measurekit/internal/kv"
	"measurekit/internal/logging"
	"measurekit/internal/units"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions carries global flags and the state resolved from them.
type rootOptions struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "measure",
		Short: "Distance and temperature readings shown in your preferred units",
		Long: `measure converts distance and temperature readings into the units you
prefer and tells you how it feels about them.

Preferences (distance unit, temperature unit, emoji visibility) are kept in a
key-value store: a YAML defaults file, a SQLite database or process memory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newPrefsCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// setup loads config and initializes logging.
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", o.configPath, err)
	}

	logOpts := logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		Categories: cfg.Logging.Categories,
	}
	if o.verbose {
		logOpts.Level = "debug"
	}
	if err := logging.Initialize(logOpts); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logging.Get(logging.CategoryBoot)
	o.logger.Debug("config loaded",
		zap.String("path", o.configPath),
		zap.String("backend", cfg.Store.Backend),
		zap.String("store", cfg.StorePath()))
	return nil
}

// openStore opens the configured preferences backend. Callers close it.
func (o *rootOptions) openStore() (kv.Backend, error) {
	b, err := kv.Open(o.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences store: %w", err)
	}
	return b, nil
}

func (o *rootOptions) formatter() *units.Formatter {
	return units.NewFormatterForLocale(o.cfg.Display.Locale)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
