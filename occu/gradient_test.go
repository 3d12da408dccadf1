package occu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func gradientTestData(t *testing.T) *Dataset {
	t.Helper()
	histories := [][]int{
		{1, 0, 0, 1, 0, 1},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 0},
		{0, 1, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0},
	}
	return mustDataset(t, 3, 2, histories, nil)
}

// The analytic gradient must agree with central finite differences of
// the objective.
func TestGradientMatchesFiniteDifferences(t *testing.T) {
	e := NewEvaluator(gradientTestData(t))
	obj := Objective{Eval: e}

	for _, pr := range []Probs{
		{Psi: 0.6, P: 0.4, Gamma: 0.2, Eps: 0.3},
		{Psi: 0.2, P: 0.8, Gamma: 0.5, Eps: 0.1},
		{Psi: 0.9, P: 0.15, Gamma: 0.05, Eps: 0.7},
	} {
		x := pr.Logit()

		analytic := make([]float64, NumParams)
		e.Gradient(analytic, x)

		numeric := fd.Gradient(nil, obj.Func, x[:], &fd.Settings{Formula: fd.Central})
		for k := 0; k < NumParams; k++ {
			assert.InDelta(t, numeric[k], analytic[k], 1e-6)
		}
	}
}

// Gradient contributions scale linearly with site weights.
func TestGradientWeightEquivalence(t *testing.T) {
	h := []int{1, 0, 0, 1, 0, 1}
	params := Probs{Psi: 0.6, P: 0.4, Gamma: 0.2, Eps: 0.3}.Logit()

	weighted := NewEvaluator(mustDataset(t, 3, 2, [][]int{h}, []int{2}))
	copied := NewEvaluator(mustDataset(t, 3, 2, [][]int{h, h}, nil))

	a := make([]float64, NumParams)
	b := make([]float64, NumParams)
	weighted.Gradient(a, params)
	copied.Gradient(b, params)
	for k := 0; k < NumParams; k++ {
		assert.InDelta(t, b[k], a[k], 1e-12)
	}
}

// Objective wraps the evaluator without changing values.
func TestObjectiveMatchesEvaluator(t *testing.T) {
	e := NewEvaluator(gradientTestData(t))
	obj := Objective{Eval: e}
	params := Probs{Psi: 0.6, P: 0.4, Gamma: 0.2, Eps: 0.3}.Logit()

	assert.Equal(t, e.NegLogLikelihood(params), obj.Func(params[:]))

	want := make([]float64, NumParams)
	got := make([]float64, NumParams)
	e.Gradient(want, params)
	obj.Grad(got, params[:])
	assert.Equal(t, want, got)
}

func TestGradientPanicsOnLengthMismatch(t *testing.T) {
	e := NewEvaluator(gradientTestData(t))
	assert.Panics(t, func() {
		e.Gradient(make([]float64, 3), Params{})
	})
	assert.Panics(t, func() {
		Objective{Eval: e}.Func([]float64{0, 0})
	})
}
