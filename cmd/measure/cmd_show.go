package main

import (
	"fmt"

	"measurekit/internal/display"
	"measurekit/internal/prefs"
	"measurekit/internal/units"

	"github.com/spf13/cobra"
)

// newShowCmd prints the home display for one pair of readings.
func newShowCmd(opts *rootOptions) *cobra.Command {
	var distance, temperature string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show readings in the preferred units",
		Long: `Shows a distance (entered in miles) and a temperature (entered in
Fahrenheit) converted to the preferred units, with mood emoji if enabled.

Readings that are empty or not numbers count as 0. A measurement stays hidden
until its unit preference has been saved with "measure prefs set".

Example:
  measure show --distance 12 --temperature 70`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			readings := display.Readings{
				DistanceMiles:         units.ParseReading(distance),
				TemperatureFahrenheit: units.ParseReading(temperature),
			}
			home := display.Build(prefs.New(store), readings, opts.formatter())

			out := cmd.OutOrStdout()
			for _, line := range home.Lines() {
				fmt.Fprintln(out, line.Render(home.EmojiVisible))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&distance, "distance", "", "Distance in miles")
	cmd.Flags().StringVar(&temperature, "temperature", "", "Temperature in Fahrenheit")
	return cmd
}
