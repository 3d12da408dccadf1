package occu

import (
	"gonum.org/v1/gonum/mat"
)

// Parameter-scale derivatives of the model matrices. The prior
// [1-psi, psi] differentiates to [-1, 1]; the emission columns
// [1, 1-p] and [0, p] differentiate to [0, -1] and [0, 1]; the season
// matrix rows differentiate to [-1, 1] in gamma and [1, -1] in epsilon.
var (
	dPrior       = mat.NewVecDense(2, []float64{-1, 1})
	dEmitAbsent  = mat.NewVecDense(2, []float64{0, -1})
	dEmitPresent = mat.NewVecDense(2, []float64{0, 1})
	dSeasonGamma = mat.NewDense(2, 2, []float64{-1, 1, 0, 0})
	dSeasonEps   = mat.NewDense(2, 2, []float64{0, 0, 1, -1})
)

func dEmissionColumn(symbol int) mat.Vector {
	if symbol == 0 {
		return dEmitAbsent
	}
	return dEmitPresent
}

// Gradient writes the exact gradient of the negative log-likelihood
// with respect to the logit-scale parameters into dst, which must have
// length NumParams. The forward sensitivity vectors are propagated
// through the same recursion as the forward probabilities and then
// chain-ruled through the logistic transform.
func (e *Evaluator) Gradient(dst []float64, params Params) {
	if len(dst) != NumParams {
		panic("occu: gradient destination length mismatch")
	}
	m := newModel(params)
	d := e.data.Design()
	scores := make([][NumParams]float64, e.data.Sites())

	e.eachSite(func(i int) {
		scores[i] = siteScore(m, d, e.data.History(i))
	})

	var total [NumParams]float64
	for i := range scores {
		w := float64(e.data.Weight(i))
		for k := 0; k < NumParams; k++ {
			total[k] += w * scores[i][k]
		}
	}

	// d prob / d logit for each parameter, negated for the NLL.
	pr := m.probs
	dst[ParamPsi] = -total[ParamPsi] * pr.Psi * (1 - pr.Psi)
	dst[ParamP] = -total[ParamP] * pr.P * (1 - pr.P)
	dst[ParamGamma] = -total[ParamGamma] * pr.Gamma * (1 - pr.Gamma)
	dst[ParamEps] = -total[ParamEps] * pr.Eps * (1 - pr.Eps)
}

// siteScore runs the forward recursion for one history together with
// the sensitivity of the forward vector to each probability-scale
// parameter, returning the derivative of the site log-likelihood.
func siteScore(m *model, d Design, history []int) [NumParams]float64 {
	var alpha, pre, step, extra mat.VecDense
	sens := make([]*mat.VecDense, NumParams)
	for k := range sens {
		sens[k] = mat.NewVecDense(2, nil)
	}

	b := m.emissionColumn(history[0])
	alpha.MulElemVec(m.prior, b)
	sens[ParamPsi].MulElemVec(dPrior, b)
	sens[ParamP].MulElemVec(m.prior, dEmissionColumn(history[0]))

	for t := 1; t < len(history); t++ {
		phi := m.transition(d, t)
		b = m.emissionColumn(history[t])
		pre.MulVec(phi.T(), &alpha)

		for k := range sens {
			step.MulVec(phi.T(), sens[k])
			if d.Transition(t) {
				switch k {
				case ParamGamma:
					extra.MulVec(dSeasonGamma.T(), &alpha)
					step.AddVec(&step, &extra)
				case ParamEps:
					extra.MulVec(dSeasonEps.T(), &alpha)
					step.AddVec(&step, &extra)
				}
			}
			step.MulElemVec(&step, b)
			if k == ParamP {
				extra.MulElemVec(&pre, dEmissionColumn(history[t]))
				step.AddVec(&step, &extra)
			}
			sens[k].CopyVec(&step)
		}

		alpha.MulElemVec(&pre, b)
	}

	total := mat.Sum(&alpha)
	var score [NumParams]float64
	for k := range sens {
		score[k] = mat.Sum(sens[k]) / total
	}
	return score
}

// Objective adapts an Evaluator to the function and gradient
// signatures consumed by gonum/optimize, with x the logit-scale
// parameter vector in the order psi, p, gamma, epsilon.
type Objective struct {
	Eval *Evaluator
}

// Func returns the negative log-likelihood at x.
func (o Objective) Func(x []float64) float64 {
	return o.Eval.NegLogLikelihood(toParams(x))
}

// Grad writes the gradient of the negative log-likelihood at x into
// dst.
func (o Objective) Grad(dst, x []float64) {
	o.Eval.Gradient(dst, toParams(x))
}

func toParams(x []float64) Params {
	if len(x) != NumParams {
		panic("occu: parameter vector length mismatch")
	}
	var p Params
	copy(p[:], x)
	return p
}
