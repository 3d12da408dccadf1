package occu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/oliviergimenez/dynocc/matutil"
)

// EmissionMatrix returns the 2x2 emission matrix B with rows indexed by
// latent state (0 unoccupied, 1 occupied) and columns by observed
// symbol (0 not detected, 1 detected). An unoccupied site is never
// detected; an occupied site is detected with probability P.
func (pr Probs) EmissionMatrix() mat.Matrix {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		1 - pr.P, pr.P,
	})
}

// SeasonMatrix returns the 2x2 between-season transition matrix with
// both rows and columns indexed by latent state.
func (pr Probs) SeasonMatrix() mat.Matrix {
	return mat.NewDense(2, 2, []float64{
		1 - pr.Gamma, pr.Gamma,
		pr.Eps, 1 - pr.Eps,
	})
}

// Prior returns the state distribution at the first occasion,
// [1-Psi, Psi].
func (pr Probs) Prior() mat.Vector {
	return mat.NewVecDense(2, []float64{1 - pr.Psi, pr.Psi})
}

// TransitionMatrix returns the transition matrix applied when stepping
// into occasion t under design d: the season matrix at a primary
// occasion, the identity otherwise.
func (pr Probs) TransitionMatrix(d Design, t int) mat.Matrix {
	if d.Transition(t) {
		return pr.SeasonMatrix()
	}
	return matutil.Eye(2, 2)
}

// model caches the matrices derived from one parameter vector for the
// duration of a single likelihood evaluation.
type model struct {
	probs  Probs
	b      *mat.Dense
	season *mat.Dense
	ident  mat.Matrix
	prior  *mat.VecDense
}

func newModel(p Params) *model {
	pr := p.Probs()
	return &model{
		probs:  pr,
		b:      pr.EmissionMatrix().(*mat.Dense),
		season: pr.SeasonMatrix().(*mat.Dense),
		ident:  matutil.Eye(2, 2),
		prior:  pr.Prior().(*mat.VecDense),
	}
}

// emissionColumn selects the column of B for an observed symbol. Every
// symbol lookup, including the one at occasion 0, goes through here.
func (m *model) emissionColumn(symbol int) mat.Vector {
	return m.b.ColView(symbol)
}

// transition returns the matrix applied when stepping into occasion t.
func (m *model) transition(d Design, t int) mat.Matrix {
	if d.Transition(t) {
		return m.season
	}
	return m.ident
}
