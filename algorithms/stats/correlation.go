package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// minDenominator guards the Pearson division against near-constant inputs.
// Below this the correlation is defined as 0 rather than letting the
// quotient blow up on floating-point noise.
const minDenominator = 1e-6

// Pearson computes the Pearson correlation coefficient between two
// equal-length samples. Both inputs are mean-centered; if the square root of
// the variance product falls below minDenominator the result is 0.
// The function performs no allocation and is safe on the analysis hot path.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	xMean := stat.Mean(x, nil)
	yMean := stat.Mean(y, nil)

	var numerator, xVar, yVar float64
	for i := range x {
		xDev := x[i] - xMean
		yDev := y[i] - yMean
		numerator += xDev * yDev
		xVar += xDev * xDev
		yVar += yDev * yDev
	}

	denominator := math.Sqrt(xVar * yVar)
	if denominator < minDenominator {
		return 0
	}
	return numerator / denominator
}
