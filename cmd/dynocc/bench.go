package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oliviergimenez/dynocc/bench"
	"github.com/oliviergimenez/dynocc/simulate"
)

func benchCommand() *cobra.Command {
	cfg := bench.Config{Sim: simulate.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated maximum likelihood fits",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := bench.Run(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, d := range report.Durations {
				fmt.Fprintf(out, "rep %d: %v (nll %.4f)\n", i+1, d, report.Results[i].NLL)
			}
			fmt.Fprintf(out, "min %v  mean %v  max %v\n",
				report.Min(), report.Mean(), report.Max())
			return nil
		},
	}
	simFlags(cmd, &cfg.Sim)
	cmd.Flags().IntVar(&cfg.Reps, "reps", bench.DefaultReps, "number of timed fits")
	cmd.Flags().BoolVar(&cfg.FreshData, "fresh-data", false, "simulate a new dataset for every repetition")
	return cmd
}
