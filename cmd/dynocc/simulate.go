package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oliviergimenez/dynocc/simulate"
)

// simFlags binds the full simulation configuration onto a command so
// simulate, fit and bench share one set of flags.
func simFlags(cmd *cobra.Command, cfg *simulate.Config) {
	f := cmd.Flags()
	f.IntVar(&cfg.Sites, "sites", cfg.Sites, "number of sites")
	f.IntVar(&cfg.Seasons, "seasons", cfg.Seasons, "number of seasons")
	f.IntVar(&cfg.Surveys, "surveys", cfg.Surveys, "surveys per season")
	f.Float64Var(&cfg.Truth.Psi, "psi", cfg.Truth.Psi, "true initial occupancy probability")
	f.Float64Var(&cfg.Truth.P, "p", cfg.Truth.P, "true detection probability")
	f.Float64Var(&cfg.Truth.Gamma, "gamma", cfg.Truth.Gamma, "true colonization probability")
	f.Float64Var(&cfg.Truth.Eps, "eps", cfg.Truth.Eps, "true extinction probability")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
}

func simulateCommand() *cobra.Command {
	cfg := simulate.DefaultConfig()
	var output string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a detection-history dataset and write it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := simulate.Run(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeDataset(w, res.Data)
		},
	}
	simFlags(cmd, &cfg)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
