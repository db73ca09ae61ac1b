package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared across algorithm packages, using gonum where
// it carries the weight.

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit limits v to [0, 1]. Configuration factors and confidences are
// clamped rather than rejected.
func ClampUnit(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Mean calculates the arithmetic mean of a slice using gonum.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Max returns the maximum value of a slice using gonum.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}
