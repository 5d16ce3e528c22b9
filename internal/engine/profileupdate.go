package engine

import (
	"math"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// ProfileLearningRate is the EMA weight given to the newest mesocycle's
// observation when updating a tolerance estimate.
const ProfileLearningRate = 0.3

// minMEVGap keeps the learned MEV meaningfully below the learned MRV.
const minMEVGap = 2

// UpdateVolumeProfile folds a mesocycle analysis into the learned profile
// using an exponential moving average per muscle. It is a pure transform:
// the input profile is never mutated and callers persist the returned value.
// Muscles whose verdict was insufficient_data are left untouched.
func UpdateVolumeProfile(profile models.UserVolumeProfile, analysis MesocycleAnalysis, now time.Time) models.UserVolumeProfile {
	updated := profile.Clone()

	for muscle, outcome := range analysis.Outcomes {
		if outcome.Verdict == VerdictInsufficientData {
			continue
		}

		tol := updated.Tolerances[muscle]
		observed := clampNonNegative(outcome.AvgWeeklySets)

		switch outcome.Verdict {
		case VerdictTooHigh:
			// The observed volume exceeded tolerance, so pull the MRV
			// estimate toward just under what was performed.
			target := math.Min(float64(tol.EstimatedMRV), observed-1)
			tol.EstimatedMRV = ema(target, tol.EstimatedMRV)

		case VerdictTooLow:
			mrvTarget := math.Max(float64(tol.EstimatedMRV), observed+3)
			tol.EstimatedMRV = ema(mrvTarget, tol.EstimatedMRV)
			mevTarget := math.Max(float64(tol.EstimatedMEV), observed)
			tol.EstimatedMEV = ema(mevTarget, tol.EstimatedMEV)

		case VerdictOptimal:
			tol.EstimatedMRV = ema(observed+4, tol.EstimatedMRV)
			tol.EstimatedMEV = ema(math.Max(0, observed-2), tol.EstimatedMEV)
		}

		if tol.EstimatedMEV > tol.EstimatedMRV-minMEVGap {
			tol.EstimatedMEV = tol.EstimatedMRV - minMEVGap
		}

		tol.DataPoints++
		tol.Confidence = confidenceForDataPoints(tol.DataPoints)
		tol.LastUpdated = now

		updated.Tolerances[muscle] = tol
	}

	updated.UpdatedAt = now
	return updated
}

// ema blends a new target into the current estimate at the fixed learning
// rate, rounding to whole sets.
func ema(target float64, current int) int {
	return int(math.Round(ProfileLearningRate*target + (1-ProfileLearningRate)*float64(current)))
}

func confidenceForDataPoints(n int) models.ConfidenceTier {
	switch {
	case n >= 4:
		return models.ConfidenceHigh
	case n >= 2:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
