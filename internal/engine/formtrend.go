package engine

import "github.com/Joshfkon/workout-app-sub012/internal/models"

// FormTrend classifies how movement quality changed across weeks.
type FormTrend string

const (
	FormImproving FormTrend = "improving"
	FormStable    FormTrend = "stable"
	FormDegrading FormTrend = "degrading"
)

// FormTrendResult reports average form degradation over a window and the
// regression-based trend of the form-score series.
type FormTrendResult struct {
	AvgDegradation float64   `json:"avg_degradation"`
	Trend          FormTrend `json:"trend"`
}

// AnalyzeFormTrend regresses average form score over weeks. Degradation is
// positive when form got worse (first week minus last week). Fewer than two
// weeks yields zero degradation at stable trend.
func AnalyzeFormTrend(weeks []models.MuscleVolumeData) FormTrendResult {
	if len(weeks) < 2 {
		return FormTrendResult{Trend: FormStable}
	}

	scores := make([]float64, len(weeks))
	for i, w := range weeks {
		scores[i] = clampNonNegative(w.AverageFormScore)
	}

	slope := LinearRegressionSlope(scores)
	var trend FormTrend
	switch {
	case slope < -0.05:
		trend = FormDegrading
	case slope > 0.05:
		trend = FormImproving
	default:
		trend = FormStable
	}

	return FormTrendResult{
		AvgDegradation: scores[0] - scores[len(scores)-1],
		Trend:          trend,
	}
}
