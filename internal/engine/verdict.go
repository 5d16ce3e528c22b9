package engine

import "github.com/Joshfkon/workout-app-sub012/internal/models"

// VolumeVerdict is the per-muscle conclusion for a mesocycle.
type VolumeVerdict string

const (
	VerdictTooHigh          VolumeVerdict = "too_high"
	VerdictOptimal          VolumeVerdict = "optimal"
	VerdictTooLow           VolumeVerdict = "too_low"
	VerdictInsufficientData VolumeVerdict = "insufficient_data"
)

// Verdict scoring weights. These are product-tuned heuristics; change them
// only with product input, not by re-derivation.
const (
	tooHighDecliningTrendPoints = 30
	tooHighConcerningDriftPoints = 30
	tooHighElevatedDriftPoints   = 15
	tooHighSevereFormPoints      = 25 // form degradation > 0.3
	tooHighMildFormPoints        = 10 // form degradation > 0.15
	tooHighAboveMRVPoints        = 15

	tooLowImprovingTrendPoints = 25 // improving and rate > 2%/week
	tooLowMinimalDriftPoints   = 20 // RIR drift < 0.3
	tooLowStableFormPoints     = 15 // form degradation < 0.05
	tooLowBelowMEVPoints       = 30

	verdictThreshold       = 50
	strongVerdictThreshold = 70
	maxVerdictConfidence   = 90
)

// VerdictResult is the outcome of DetermineVolumeVerdict: the verdict, a
// 0-100 confidence, and a suggested weekly set adjustment.
type VerdictResult struct {
	Verdict    VolumeVerdict `json:"verdict"`
	Confidence int           `json:"confidence"`
	Adjustment int           `json:"adjustment"`
}

// DetermineVolumeVerdict scores the too-high and too-low hypotheses from the
// progression, effort-drift, and form-trend signals plus the current volume
// relative to the learned tolerance. An insufficient_data progression
// short-circuits to an insufficient_data verdict with zero confidence and a
// neutral adjustment.
func DetermineVolumeVerdict(
	prog ProgressionAnalysis,
	drift EffortDriftResult,
	form FormTrendResult,
	currentSets int,
	tol models.MuscleTolerance,
) VerdictResult {
	if prog.Status == ProgressionInsufficientData {
		return VerdictResult{Verdict: VerdictInsufficientData}
	}

	tooHigh := 0
	if prog.Trend == TrendDeclining {
		tooHigh += tooHighDecliningTrendPoints
	}
	switch drift.Significance {
	case DriftConcerning:
		tooHigh += tooHighConcerningDriftPoints
	case DriftElevated:
		tooHigh += tooHighElevatedDriftPoints
	case DriftNormal:
	}
	switch {
	case form.AvgDegradation > 0.3:
		tooHigh += tooHighSevereFormPoints
	case form.AvgDegradation > 0.15:
		tooHigh += tooHighMildFormPoints
	}
	if currentSets > tol.EstimatedMRV {
		tooHigh += tooHighAboveMRVPoints
	}

	tooLow := 0
	if prog.Trend == TrendImproving && prog.AvgProgressionRate > 2 {
		tooLow += tooLowImprovingTrendPoints
	}
	if drift.Drift < 0.3 {
		tooLow += tooLowMinimalDriftPoints
	}
	if form.AvgDegradation < 0.05 {
		tooLow += tooLowStableFormPoints
	}
	if currentSets < tol.EstimatedMEV {
		tooLow += tooLowBelowMEVPoints
	}

	switch {
	case tooHigh >= verdictThreshold:
		adj := -2
		if tooHigh >= strongVerdictThreshold {
			adj = -3
		}
		return VerdictResult{Verdict: VerdictTooHigh, Confidence: minInt(maxVerdictConfidence, 50+tooHigh), Adjustment: adj}
	case tooLow >= verdictThreshold:
		adj := 2
		if tooLow >= strongVerdictThreshold {
			adj = 3
		}
		return VerdictResult{Verdict: VerdictTooLow, Confidence: minInt(maxVerdictConfidence, 50+tooLow), Adjustment: adj}
	default:
		gap := tooHigh - tooLow
		if gap < 0 {
			gap = -gap
		}
		spread := 30 - gap
		if spread < 0 {
			spread = 0
		}
		return VerdictResult{Verdict: VerdictOptimal, Confidence: 60 + spread}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
