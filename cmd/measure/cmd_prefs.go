package main

import (
	"errors"
	"fmt"

	"measurekit/internal/prefs"
	"measurekit/internal/units"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newPrefsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change unit and emoji preferences",
	}
	cmd.AddCommand(newPrefsGetCmd(opts))
	cmd.AddCommand(newPrefsSetCmd(opts))
	cmd.AddCommand(newPrefsOptionsCmd())
	return cmd
}

func newPrefsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current preferences (defaults for unset keys)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := yaml.Marshal(prefs.New(store).Load())
			if err != nil {
				return fmt.Errorf("failed to marshal preferences: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newPrefsSetCmd(opts *rootOptions) *cobra.Command {
	var distance, temperature string
	var emoji bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save preferences; only the flags given are written",
		Long: `Saves preferences to the configured store. Flags that are not given
leave their key untouched.

Examples:
  measure prefs set --distance kilometers --temperature celsius
  measure prefs set --emoji=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("distance") && !flags.Changed("temperature") && !flags.Changed("emoji") {
				return errors.New("nothing to set: pass --distance, --temperature or --emoji")
			}

			// Parse everything before writing anything.
			var du units.DistanceUnit
			var tu units.TemperatureUnit
			var err error
			if flags.Changed("distance") {
				if du, err = units.ParseDistanceUnit(distance); err != nil {
					return err
				}
			}
			if flags.Changed("temperature") {
				if tu, err = units.ParseTemperatureUnit(temperature); err != nil {
					return err
				}
			}

			backend, err := opts.openStore()
			if err != nil {
				return err
			}
			defer backend.Close()
			store := prefs.New(backend)

			if flags.Changed("distance") {
				if err := store.SetDistanceUnit(du); err != nil {
					return err
				}
			}
			if flags.Changed("temperature") {
				if err := store.SetTemperatureUnit(tu); err != nil {
					return err
				}
			}
			if flags.Changed("emoji") {
				if err := store.SetEmojiVisible(emoji); err != nil {
					return err
				}
			}

			opts.logger.Info("preferences saved", zap.Any("settings", store.Load()))
			return nil
		},
	}

	cmd.Flags().StringVar(&distance, "distance", "", "Distance unit (miles, kilometers)")
	cmd.Flags().StringVar(&temperature, "temperature", "", "Temperature unit (fahrenheit, celsius)")
	cmd.Flags().BoolVar(&emoji, "emoji", false, "Show mood emoji")
	return cmd
}

// newPrefsOptionsCmd lists the choices a preferences form offers.
func newPrefsOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the available units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "distance:")
			for _, u := range units.DistanceUnits {
				fmt.Fprintf(out, "  %-12s %s\n", u, u.Title())
			}
			fmt.Fprintln(out, "temperature:")
			for _, u := range units.TemperatureUnits {
				fmt.Fprintf(out, "  %-12s %s\n", u, u.Title())
			}
			fmt.Fprintln(out, "emoji:")
			fmt.Fprintln(out, "  false        Hide emoji")
			fmt.Fprintln(out, "  true         Show emoji")
			return nil
		},
	}
}
