package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	assert := assert.New(t)

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	assert.InDelta(1.0, Pearson(x, y), 1e-12)
}

func TestPearsonPerfectAntiCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 8, 6, 4, 2}

	assert.InDelta(t, -1.0, Pearson(x, y), 1e-12)
}

func TestPearsonConstantInputIsZero(t *testing.T) {
	assert := assert.New(t)

	x := []float64{3, 3, 3, 3}
	y := []float64{1, 2, 3, 4}

	// Zero variance would divide by ~0; the guard defines this as 0.
	assert.Equal(0.0, Pearson(x, y))
	assert.Equal(0.0, Pearson(y, x))
}

func TestPearsonDegenerateInputs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, Pearson(nil, nil))
	assert.Equal(0.0, Pearson([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestPearsonMatchesGonum(t *testing.T) {
	x := []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	y := []float64{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1}

	assert.InDelta(t, stat.Correlation(x, y, nil), Pearson(x, y), 1e-12)
}
