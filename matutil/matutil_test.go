package matutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestOnesAndFull(t *testing.T) {
	ones := Ones(2, 3)
	m, n := ones.Dims()
	assert.Equal(t, 2, m)
	assert.Equal(t, 3, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, 1.0, ones.At(i, j))
		}
	}

	full := Full(2, 2, 0.25)
	assert.Equal(t, 0.25, full.At(1, 0))
}

func TestEye(t *testing.T) {
	eye := Eye(2, 2)
	want := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.EqualApprox(want, eye, 0))

	rect := Eye(2, 3)
	m, n := rect.Dims()
	assert.Equal(t, 2, m)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1.0, rect.At(1, 1))
	assert.Equal(t, 0.0, rect.At(1, 2))
}

func TestHasNaNOrInf(t *testing.T) {
	clean := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.False(t, HasNaNOrInf(clean))

	withNaN := mat.NewDense(2, 2, []float64{1, math.NaN(), 3, 4})
	assert.True(t, HasNaNOrInf(withNaN))

	withInf := mat.NewDense(2, 2, []float64{1, 2, math.Inf(-1), 4})
	assert.True(t, HasNaNOrInf(withInf))
}

func TestRowSums(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{6, 15}, RowSums(m))
}
