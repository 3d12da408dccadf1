// Command dynocc simulates detection-history datasets from a dynamic
// occupancy model, fits the model by maximum likelihood and benchmarks
// repeated fits.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "dynocc",
		Short:         "Dynamic occupancy model simulation, fitting and benchmarking",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(simulateCommand(), fitCommand(), benchCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
