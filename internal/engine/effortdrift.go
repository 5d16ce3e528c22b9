package engine

import "github.com/Joshfkon/workout-app-sub012/internal/models"

// DriftSignificance grades within-block RIR drift.
type DriftSignificance string

const (
	DriftNormal     DriftSignificance = "normal"
	DriftElevated   DriftSignificance = "elevated"
	DriftConcerning DriftSignificance = "concerning"
)

// EffortDriftResult describes how much harder training felt across a block.
type EffortDriftResult struct {
	Drift        float64           `json:"drift"`
	Progressive  bool              `json:"progressive"`
	Significance DriftSignificance `json:"significance"`
}

// CalculateRIRDrift compares average effort rating across the start, middle,
// and end of a multi-week window. Positive drift means sets felt harder over
// time. Progressive is set when the midpoint week already shows lower RIR
// than the first, i.e. fatigue accumulated steadily rather than only at the
// end. Fewer than three weeks yields zero drift at normal significance.
func CalculateRIRDrift(weeks []models.MuscleVolumeData) EffortDriftResult {
	if len(weeks) < 3 {
		return EffortDriftResult{Significance: DriftNormal}
	}

	first := clampNonNegative(weeks[0].AverageRIR)
	mid := clampNonNegative(weeks[len(weeks)/2].AverageRIR)
	last := clampNonNegative(weeks[len(weeks)-1].AverageRIR)

	drift := first - last
	progressive := mid < first

	var sig DriftSignificance
	switch {
	case drift > 2 || (drift > 1.5 && progressive):
		sig = DriftConcerning
	case drift > 1:
		sig = DriftElevated
	default:
		sig = DriftNormal
	}

	return EffortDriftResult{Drift: drift, Progressive: progressive, Significance: sig}
}
