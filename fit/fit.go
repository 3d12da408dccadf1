// Package fit estimates the parameters of a dynamic occupancy model by
// maximum likelihood, handing the forward-algorithm objective and its
// exact gradient to a quasi-Newton optimizer.
package fit

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/oliviergimenez/dynocc/matutil"
	"github.com/oliviergimenez/dynocc/occu"
)

// ErrNonFinite indicates the optimizer stopped at a non-finite
// solution, typically after walking into a parameter region where a
// history becomes impossible.
var ErrNonFinite = errors.New("fit: optimizer returned a non-finite solution")

// Settings controls a fit. The zero value starts every probability at
// 0.5 (logit 0) and minimizes with BFGS.
type Settings struct {
	// Start is the logit-scale starting point.
	Start occu.Params
	// Method overrides the default BFGS minimizer.
	Method optimize.Method
	// Workers overrides the evaluator's concurrency; 0 keeps its
	// default of one worker per CPU.
	Workers int
}

// Result holds the converged estimates.
type Result struct {
	// Estimates on the logit scale
	Logit occu.Params
	// Estimates on the probability scale
	Probs occu.Probs
	// Negative log-likelihood at the estimates
	NLL float64
	// Optimizer effort
	FuncEvaluations int
	GradEvaluations int
	Iterations      int
	Status          optimize.Status
}

// MLE fits the model to data and returns the maximum likelihood
// estimates. Optimizer failures propagate unchanged; there are no
// retries.
func MLE(data *occu.Dataset, settings *Settings) (*Result, error) {
	if settings == nil {
		settings = &Settings{}
	}

	eval := occu.NewEvaluator(data)
	if settings.Workers != 0 {
		eval.Workers = settings.Workers
	}
	obj := occu.Objective{Eval: eval}
	problem := optimize.Problem{Func: obj.Func, Grad: obj.Grad}

	method := settings.Method
	if method == nil {
		method = &optimize.BFGS{}
	}

	res, err := optimize.Minimize(problem, settings.Start[:], nil, method)
	if err != nil {
		return nil, err
	}
	if matutil.HasNaNOrInf(mat.NewVecDense(len(res.X), res.X)) {
		return nil, ErrNonFinite
	}

	var est occu.Params
	copy(est[:], res.X)
	return &Result{
		Logit:           est,
		Probs:           est.Probs(),
		NLL:             res.F,
		FuncEvaluations: res.FuncEvaluations,
		GradEvaluations: res.GradEvaluations,
		Iterations:      res.MajorIterations,
		Status:          res.Status,
	}, nil
}
