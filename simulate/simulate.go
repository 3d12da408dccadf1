// Package simulate draws detection-history datasets from a dynamic
// occupancy model with known parameters. Given initial occupancy,
// detection, colonization and extinction probabilities it generates the
// latent occupancy state of every site across seasons and the 0/1
// detections observed at each survey, as a dataset ready for the
// likelihood evaluator.
package simulate

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/oliviergimenez/dynocc/occu"
)

// Configuration errors.
var (
	ErrBadSiteCount = errors.New("simulate: at least one site is required")
	ErrBadProb      = errors.New("simulate: true parameters must lie in [0,1]")
)

// Config holds the simulation settings. All array shapes and true
// parameter values are explicit here; nothing is baked into the
// generator.
type Config struct {
	// Number of sites
	Sites int
	// Number of seasons
	Seasons int
	// Number of repeat surveys per season
	Surveys int
	// True parameter values on the probability scale
	Truth occu.Probs
	// Seed for the random source
	Seed uint64
}

// DefaultConfig returns the reference simulation setting: 200 sites
// surveyed 3 times per season over 5 seasons, with psi=0.6, p=0.4,
// gamma=0.2 and epsilon=0.3.
func DefaultConfig() Config {
	return Config{
		Sites:   200,
		Seasons: 5,
		Surveys: 3,
		Truth:   occu.Probs{Psi: 0.6, P: 0.4, Gamma: 0.2, Eps: 0.3},
		Seed:    1,
	}
}

// Result bundles a simulated dataset with the latent states that
// produced it.
type Result struct {
	// The simulated detection histories
	Data *occu.Dataset
	// Latent occupancy per site (row) and season (column)
	States *mat.Dense
	// The parameters the data were drawn from
	Truth occu.Probs
}

// Run simulates one dataset. The same configuration, seed included,
// always produces the same dataset.
func Run(cfg Config) (*Result, error) {
	if cfg.Sites < 1 {
		return nil, ErrBadSiteCount
	}
	for _, p := range []float64{cfg.Truth.Psi, cfg.Truth.P, cfg.Truth.Gamma, cfg.Truth.Eps} {
		if p < 0 || p > 1 {
			return nil, ErrBadProb
		}
	}
	design, err := occu.NewDesign(cfg.Seasons, cfg.Surveys)
	if err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.Seed)
	initial := distuv.Bernoulli{P: cfg.Truth.Psi, Src: src}
	colonize := distuv.Bernoulli{P: cfg.Truth.Gamma, Src: src}
	survive := distuv.Bernoulli{P: 1 - cfg.Truth.Eps, Src: src}
	detect := distuv.Bernoulli{P: cfg.Truth.P, Src: src}

	states := mat.NewDense(cfg.Sites, cfg.Seasons, nil)
	histories := make([][]int, cfg.Sites)
	for i := 0; i < cfg.Sites; i++ {
		histories[i] = make([]int, design.Occasions())
		z := int(initial.Rand())
		for k := 0; k < cfg.Seasons; k++ {
			if k > 0 {
				if z == 1 {
					z = int(survive.Rand())
				} else {
					z = int(colonize.Rand())
				}
			}
			states.Set(i, k, float64(z))
			for j := 0; j < cfg.Surveys; j++ {
				y := 0
				if z == 1 {
					y = int(detect.Rand())
				}
				histories[i][k*cfg.Surveys+j] = y
			}
		}
	}

	data, err := occu.NewDataset(design, histories, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Data: data, States: states, Truth: cfg.Truth}, nil
}
