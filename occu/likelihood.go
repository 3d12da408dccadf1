package occu

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Evaluator computes the negative log-likelihood of a dataset under the
// dynamic occupancy model. It is stateless between calls: every call
// rebuilds the model matrices from the supplied parameters, so the same
// inputs always produce the same value.
type Evaluator struct {
	data *Dataset

	// Workers bounds the number of concurrent per-site recursions.
	// Values below 2 evaluate all sites on the calling goroutine.
	Workers int
}

// NewEvaluator returns an evaluator over data with one worker per
// available CPU.
func NewEvaluator(data *Dataset) *Evaluator {
	return &Evaluator{data: data, Workers: runtime.GOMAXPROCS(0)}
}

// Data returns the dataset the evaluator was built over.
func (e *Evaluator) Data() *Dataset {
	return e.data
}

// NegLogLikelihood evaluates the weighted negative log-likelihood at
// the given logit-scale parameters. A history that is impossible under
// the parameters contributes -Inf to the log-likelihood and the result
// is +Inf; no guard intervenes.
func (e *Evaluator) NegLogLikelihood(params Params) float64 {
	m := newModel(params)
	d := e.data.Design()
	contrib := make([]float64, e.data.Sites())

	e.eachSite(func(i int) {
		contrib[i] = float64(e.data.Weight(i)) * siteLogLikelihood(m, d, e.data.History(i))
	})

	return -floats.Sum(contrib)
}

// eachSite runs fn for every site index, fanning out across workers
// when more than one is configured. Site recursions share no state
// beyond the read-only model matrices.
func (e *Evaluator) eachSite(fn func(i int)) {
	sites := e.data.Sites()
	workers := e.Workers
	if workers > sites {
		workers = sites
	}
	if workers < 2 {
		for i := 0; i < sites; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < sites; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}

// siteLogLikelihood runs the forward recursion over one history and
// returns the log of the final forward sum.
func siteLogLikelihood(m *model, d Design, history []int) float64 {
	var alpha, step mat.VecDense
	alpha.MulElemVec(m.prior, m.emissionColumn(history[0]))
	for t := 1; t < len(history); t++ {
		step.MulVec(m.transition(d, t).T(), &alpha)
		alpha.MulElemVec(&step, m.emissionColumn(history[t]))
	}
	return math.Log(mat.Sum(&alpha))
}

// Forward returns the forward probability vectors for one site as an
// N by 2 matrix: row t holds ALPHA after absorbing the symbol at
// occasion t. Intended for diagnostic inspection, not the fitting path.
func (e *Evaluator) Forward(site int, params Params) *mat.Dense {
	m := newModel(params)
	d := e.data.Design()
	history := e.data.History(site)

	out := mat.NewDense(len(history), 2, nil)
	var alpha, step mat.VecDense
	alpha.MulElemVec(m.prior, m.emissionColumn(history[0]))
	out.SetRow(0, []float64{alpha.AtVec(0), alpha.AtVec(1)})
	for t := 1; t < len(history); t++ {
		step.MulVec(m.transition(d, t).T(), &alpha)
		alpha.MulElemVec(&step, m.emissionColumn(history[t]))
		out.SetRow(t, []float64{alpha.AtVec(0), alpha.AtVec(1)})
	}
	return out
}
