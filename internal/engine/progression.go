package engine

import (
	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// ProgressionStatus signals whether enough data existed to analyze.
type ProgressionStatus string

const (
	ProgressionOK               ProgressionStatus = "ok"
	ProgressionInsufficientData ProgressionStatus = "insufficient_data"
)

// ProgressionTrend classifies the direction of week-over-week e1RM change.
type ProgressionTrend string

const (
	TrendImproving   ProgressionTrend = "improving"
	TrendMaintaining ProgressionTrend = "maintaining"
	TrendDeclining   ProgressionTrend = "declining"
)

// ProgressionAnalysis is the week-over-week performance report for one
// exercise.
type ProgressionAnalysis struct {
	Status             ProgressionStatus                `json:"status"`
	Trend              ProgressionTrend                 `json:"trend"`
	AvgProgressionRate float64                          `json:"avg_progression_rate"`
	TotalRIRDrift      float64                          `json:"total_rir_drift"`
	AvgFormDegradation float64                          `json:"avg_form_degradation"`
	WeeksUsed          int                              `json:"weeks_used"`
	Weekly             []models.ExerciseWeekPerformance `json:"weekly,omitempty"`
}

// insufficientProgression is the sentinel returned when fewer than three
// usable weeks exist. Callers render a "still learning" state instead of
// handling an error.
func insufficientProgression() ProgressionAnalysis {
	return ProgressionAnalysis{
		Status: ProgressionInsufficientData,
		Trend:  TrendMaintaining,
	}
}

// AnalyzeExerciseProgression examines one exercise across consecutive weeks
// of set logs. For each week the best working set (highest e1RM, warm-ups
// ignored) is selected, then consecutive weeks are compared for e1RM percent
// change, RIR drift (positive means the load felt harder), and form change.
// Fewer than three usable weeks returns an insufficient_data sentinel.
func AnalyzeExerciseProgression(exercise string, weeks [][]models.SetLogRow) ProgressionAnalysis {
	var best []models.ExerciseWeekPerformance
	for i, sets := range weeks {
		if perf, ok := bestSetOfWeek(exercise, i+1, sets); ok {
			best = append(best, perf)
		}
	}
	if len(best) < 3 {
		return insufficientProgression()
	}

	var rates []float64
	var totalRIRDrift, totalFormDeg float64
	for i := 1; i < len(best); i++ {
		prev, curr := best[i-1], &best[i]
		if prev.EstimatedOneRM > 0 {
			curr.E1RMChangePercent = (curr.EstimatedOneRM - prev.EstimatedOneRM) / prev.EstimatedOneRM * 100
		}
		curr.RIRDrift = prev.RIR - curr.RIR
		curr.FormChange = FormScore(prev.Form) - FormScore(curr.Form)

		rates = append(rates, curr.E1RMChangePercent)
		totalRIRDrift += curr.RIRDrift
		totalFormDeg += curr.FormChange
	}

	avgRate := Average(rates)
	return ProgressionAnalysis{
		Status:             ProgressionOK,
		Trend:              categorizeTrend(avgRate, rates),
		AvgProgressionRate: avgRate,
		TotalRIRDrift:      totalRIRDrift,
		AvgFormDegradation: totalFormDeg / float64(len(rates)),
		WeeksUsed:          len(best),
		Weekly:             best,
	}
}

// categorizeTrend maps the weekly rate series to a trend. Slope is checked
// alongside the average so a strong start masking a late slide still reads
// as declining.
func categorizeTrend(avgRate float64, rates []float64) ProgressionTrend {
	slope := LinearRegressionSlope(rates)
	switch {
	case avgRate > 0.5 && slope >= -0.1:
		return TrendImproving
	case avgRate < -0.5 || slope < -0.3:
		return TrendDeclining
	default:
		return TrendMaintaining
	}
}

// bestSetOfWeek picks the working set with the highest e1RM. Returns false
// when the week has no working sets for the exercise.
func bestSetOfWeek(exercise string, week int, sets []models.SetLogRow) (models.ExerciseWeekPerformance, bool) {
	var best models.ExerciseWeekPerformance
	found := false
	for _, s := range sets {
		if s.IsWarmup || (exercise != "" && s.ExerciseName != exercise) {
			continue
		}
		weight := clampNonNegative(s.WeightKg)
		rir := clampNonNegative(s.RIR)
		e1rm := EstimatedOneRepMax(weight, s.Reps, rir)
		if !found || e1rm > best.EstimatedOneRM {
			best = models.ExerciseWeekPerformance{
				ExerciseName:   s.ExerciseName,
				Week:           week,
				WeightKg:       weight,
				Reps:           s.Reps,
				RIR:            rir,
				Form:           s.Form,
				EstimatedOneRM: e1rm,
			}
			found = true
		}
	}
	return best, found
}
