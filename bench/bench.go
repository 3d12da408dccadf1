// Package bench measures the wall-clock cost of fitting the dynamic
// occupancy model: it simulates a dataset, repeats the maximum
// likelihood fit a fixed number of times and reports per-repetition
// durations.
package bench

import (
	"time"

	"github.com/oliviergimenez/dynocc/fit"
	"github.com/oliviergimenez/dynocc/simulate"
)

// DefaultReps is the number of timed repetitions when none is given.
const DefaultReps = 3

// Config controls a benchmark run.
type Config struct {
	// Reps is the number of timed fits; 0 means DefaultReps.
	Reps int
	// Sim configures the dataset the fits run on.
	Sim simulate.Config
	// Fit configures each fit; nil uses the fit defaults.
	Fit *fit.Settings
	// FreshData draws a new dataset for every repetition, offsetting
	// the seed per repetition, instead of refitting one dataset.
	FreshData bool
}

// Report holds one duration and one fit result per repetition.
type Report struct {
	Durations []time.Duration
	Results   []*fit.Result
}

// Min returns the fastest repetition.
func (r *Report) Min() time.Duration {
	min := r.Durations[0]
	for _, d := range r.Durations[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// Max returns the slowest repetition.
func (r *Report) Max() time.Duration {
	max := r.Durations[0]
	for _, d := range r.Durations[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

// Mean returns the average repetition time.
func (r *Report) Mean() time.Duration {
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total / time.Duration(len(r.Durations))
}

// Run executes the benchmark. Simulation time is excluded from the
// reported durations; only the fits are timed.
func Run(cfg Config) (*Report, error) {
	reps := cfg.Reps
	if reps < 1 {
		reps = DefaultReps
	}

	sim, err := simulate.Run(cfg.Sim)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Durations: make([]time.Duration, 0, reps),
		Results:   make([]*fit.Result, 0, reps),
	}
	for rep := 0; rep < reps; rep++ {
		if cfg.FreshData && rep > 0 {
			c := cfg.Sim
			c.Seed += uint64(rep)
			if sim, err = simulate.Run(c); err != nil {
				return nil, err
			}
		}
		start := time.Now()
		res, err := fit.MLE(sim.Data, cfg.Fit)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		report.Durations = append(report.Durations, elapsed)
		report.Results = append(report.Results, res)
	}
	return report, nil
}
