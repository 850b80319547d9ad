package main

import (
	"fmt"
	"strconv"

	"measurekit/internal/units"

	"github.com/spf13/cobra"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units of the same family",
		Long: `Converts VALUE from one unit to another and prints it formatted.

Examples:
  measure convert 26.2 miles kilometers
  measure convert 21 celsius fahrenheit`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			from, err := units.ParseUnit(args[1])
			if err != nil {
				return err
			}
			to, err := units.ParseUnit(args[2])
			if err != nil {
				return err
			}

			m, err := units.Measurement{Value: value, Unit: from}.Converted(to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.formatter().Format(m.Value, m.Unit))
			return nil
		},
	}
}
