// Command unitconvert converts a measurement from one unit to another.
//
//	unitconvert 57.4 m ft
//	unitconvert "two thousand GB" MB
//	unitconvert --full 10.7 "meters per second" mph
//
// The last argument is the target unit; everything before it is joined
// into the measurement string. A target of "*" or "<base>" converts to
// base units. Exit status is nonzero when either string fails to parse
// or no conversion relates the two units.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vantara-labs/units/unit"
	"github.com/vantara-labs/units/units"
)

const version = "0.3.0"

func main() {
	var fullString bool
	var simplified bool

	rootCmd := &cobra.Command{
		Use:     "unitconvert [measurement...] [to-unit]",
		Short:   "Convert a value from one unit to another",
		Long:    "Convert a measurement like '57.4 m', 'two thousand GB', or '45.7*22.2 feet^3/s^2' to another unit.",
		Version: version,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			measurementText := strings.Join(args[:len(args)-1], " ")
			targetText := args[len(args)-1]

			meas, err := units.MeasurementFromString(measurementText, 0)
			if err != nil {
				return fmt.Errorf("cannot parse measurement %q: %w", measurementText, err)
			}

			var target unit.Precise
			if targetText == "*" || targetText == "<base>" {
				target = unit.Precise{Dims: meas.Unit.Dims, Multiplier: 1}
				targetText = units.ToString(target, 0)
			} else {
				target, err = units.UnitFromString(targetText, 0)
				if err != nil {
					return fmt.Errorf("cannot parse unit %q: %w", targetText, err)
				}
			}

			value := units.Convert(meas.Value, meas.Unit, target)
			if math.IsNaN(value) {
				return fmt.Errorf("no valid conversion from %q to %q", measurementText, targetText)
			}

			switch {
			case simplified:
				fmt.Printf("%s = %g %s\n",
					units.MeasurementToString(meas, 0), value, units.ToString(target, 0))
			case fullString:
				fmt.Printf("%s = %g %s\n", measurementText, value, targetText)
			default:
				fmt.Printf("%g\n", value)
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVarP(&fullString, "full", "f", false,
		"include the input measurement and target units in the output")
	rootCmd.Flags().BoolVarP(&simplified, "simplified", "s", false,
		"like --full but with both sides rendered through the library's to-string; takes precedence over --full")
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
