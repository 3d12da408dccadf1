package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oliviergimenez/dynocc/fit"
	"github.com/oliviergimenez/dynocc/occu"
	"github.com/oliviergimenez/dynocc/simulate"
)

func fitCommand() *cobra.Command {
	cfg := simulate.DefaultConfig()
	var input string

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit the model to a CSV dataset, or to a fresh simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data  *occu.Dataset
				truth *occu.Probs
			)
			if input != "" {
				design, err := occu.NewDesign(cfg.Seasons, cfg.Surveys)
				if err != nil {
					return err
				}
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				if data, err = readDataset(f, design); err != nil {
					return err
				}
			} else {
				res, err := simulate.Run(cfg)
				if err != nil {
					return err
				}
				data = res.Data
				truth = &res.Truth
			}

			res, err := fit.MLE(data, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sites: %d  seasons: %d  surveys: %d\n",
				data.Sites(), data.Design().Seasons, data.Design().Surveys)
			if truth != nil {
				fmt.Fprintf(out, "truth:     psi=%.3f  p=%.3f  gamma=%.3f  eps=%.3f\n",
					truth.Psi, truth.P, truth.Gamma, truth.Eps)
			}
			fmt.Fprintf(out, "estimates: psi=%.3f  p=%.3f  gamma=%.3f  eps=%.3f\n",
				res.Probs.Psi, res.Probs.P, res.Probs.Gamma, res.Probs.Eps)
			fmt.Fprintf(out, "nll: %.4f  evaluations: %d func, %d grad\n",
				res.NLL, res.FuncEvaluations, res.GradEvaluations)
			return nil
		},
	}
	simFlags(cmd, &cfg)
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV dataset to fit instead of simulating")
	return cmd
}
