// Package engine implements the adaptive volume and recovery estimation
// engine: it learns each user's per-muscle MRV/MEV from observed performance
// drift instead of relying on population averages. Every function here is a
// pure transform over in-memory data; persistence and transport live in the
// storage and server packages.
package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// Sum returns the sum of xs, 0 for an empty slice.
func Sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

// Average returns the arithmetic mean of xs, 0 for an empty slice.
func Average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return Sum(xs) / float64(len(xs))
}

// LinearRegressionSlope returns the ordinary least-squares slope of ys
// against index 0..n-1. Degenerate inputs (n < 2, constant series) yield 0,
// never NaN.
func LinearRegressionSlope(ys []float64) float64 {
	if len(ys) < 2 {
		return 0
	}
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	return slope
}

// PearsonCorrelation returns the Pearson correlation coefficient of xs and
// ys. Mismatched lengths, n < 2, or zero variance in either series yield 0.
func PearsonCorrelation(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// FormScore maps a movement-quality rating to a numeric score.
func FormScore(r models.FormRating) float64 {
	switch r {
	case models.FormClean:
		return 1.0
	case models.FormSomeBreakdown:
		return 0.5
	case models.FormUgly:
		return 0.0
	}
	return 0
}

// EstimatedOneRepMax estimates a one-rep max from a sub-maximal set using
// the Epley formula, counting reps left in reserve as reps performed.
func EstimatedOneRepMax(weightKg float64, reps int, rir float64) float64 {
	actualReps := float64(reps) + rir
	if actualReps <= 1 {
		return weightKg
	}
	return weightKg * (1 + actualReps/30)
}

// clampNonNegative guards analyzer inputs against malformed upstream data:
// negative or NaN values become 0 instead of corrupting EMA state.
func clampNonNegative(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
