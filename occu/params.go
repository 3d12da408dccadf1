package occu

import "math"

// NumParams is the number of free model parameters.
const NumParams = 4

// Parameter positions within a Params vector.
const (
	ParamPsi = iota
	ParamP
	ParamGamma
	ParamEps
)

// Params holds the four model parameters on the unconstrained logit
// scale, in the order psi, p, gamma, epsilon. This is the vector an
// optimizer manipulates.
type Params [NumParams]float64

// Probs holds the four model parameters on the probability scale.
type Probs struct {
	// Initial occupancy probability
	Psi float64
	// Detection probability
	P float64
	// Colonization probability
	Gamma float64
	// Extinction probability
	Eps float64
}

// Probs maps the logit-scale parameters to (0,1) through the logistic
// function. This mapping lives here and nowhere else.
func (p Params) Probs() Probs {
	return Probs{
		Psi:   logistic(p[ParamPsi]),
		P:     logistic(p[ParamP]),
		Gamma: logistic(p[ParamGamma]),
		Eps:   logistic(p[ParamEps]),
	}
}

// Logit maps probability-scale parameters back to the unconstrained
// scale. Probabilities of exactly 0 or 1 map to -Inf and +Inf.
func (pr Probs) Logit() Params {
	return Params{logit(pr.Psi), logit(pr.P), logit(pr.Gamma), logit(pr.Eps)}
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
