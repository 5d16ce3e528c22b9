package engine

import (
	"math"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// RecoveryClassification summarizes an entire mesocycle.
type RecoveryClassification string

const (
	UnderRecovered  RecoveryClassification = "under_recovered"
	WellRecovered   RecoveryClassification = "well_recovered"
	UnderStimulated RecoveryClassification = "under_stimulated"
)

// minMesocycleWeeks is the smallest window a per-muscle verdict needs.
const minMesocycleWeeks = 3

// MuscleOutcome is one muscle's verdict within a mesocycle analysis.
type MuscleOutcome struct {
	Muscle              models.MuscleGroup        `json:"muscle"`
	AvgWeeklySets       float64                   `json:"avg_weekly_sets"`
	Progression         ProgressionAnalysis       `json:"progression"`
	EffortDrift         EffortDriftResult         `json:"effort_drift"`
	FormTrend           FormTrendResult           `json:"form_trend"`
	Recovery            RecoveryCorrelationResult `json:"recovery"`
	Verdict             VolumeVerdict             `json:"verdict"`
	Confidence          int                       `json:"confidence"`
	SuggestedAdjustment int                       `json:"suggested_adjustment"`
}

// MesocycleAnalysis is the derived end-of-block report. It is recomputable
// and idempotent given the same inputs; nothing here is a source of truth.
type MesocycleAnalysis struct {
	Weeks           int                                            `json:"weeks"`
	WeeklyVolume    map[models.MuscleGroup][]models.MuscleVolumeData `json:"weekly_volume"`
	Outcomes        map[models.MuscleGroup]MuscleOutcome             `json:"outcomes"`
	OverallRecovery RecoveryClassification                           `json:"overall_recovery"`
}

// AnalyzeMesocycle runs the per-muscle analyzers over the block's weekly
// aggregates and produces a verdict for every muscle with at least three
// weeks of data. The recovery correlation is computed once per block and
// shared across muscles.
func AnalyzeMesocycle(
	weekly map[models.MuscleGroup][]models.MuscleVolumeData,
	checkins []models.CheckinRow,
	sessions []models.WorkoutSessionRow,
	profile models.UserVolumeProfile,
) MesocycleAnalysis {
	recovery := AnalyzeRecoveryCorrelation(checkins, sessions)

	outcomes := make(map[models.MuscleGroup]MuscleOutcome)
	maxWeeks := 0
	for _, m := range models.AllMuscleGroups {
		weeks := weekly[m]
		if len(weeks) > maxWeeks {
			maxWeeks = len(weeks)
		}
		if len(weeks) < minMesocycleWeeks {
			continue
		}

		prog := aggregateProgression(weeks)
		drift := CalculateRIRDrift(weeks)
		form := AnalyzeFormTrend(weeks)

		avgSets := averageWeeklySets(weeks)
		verdict := DetermineVolumeVerdict(prog, drift, form, int(math.Round(avgSets)), profile.Tolerances[m])

		outcomes[m] = MuscleOutcome{
			Muscle:              m,
			AvgWeeklySets:       avgSets,
			Progression:         prog,
			EffortDrift:         drift,
			FormTrend:           form,
			Recovery:            recovery,
			Verdict:             verdict.Verdict,
			Confidence:          verdict.Confidence,
			SuggestedAdjustment: verdict.Adjustment,
		}
	}

	return MesocycleAnalysis{
		Weeks:           maxWeeks,
		WeeklyVolume:    weekly,
		Outcomes:        outcomes,
		OverallRecovery: assessOverallRecovery(outcomes),
	}
}

// aggregateProgression is the cheaper trend heuristic used on the aggregate
// path: trend comes from comparing first-vs-last-week average RIR, and the
// progression rate is the mean of the per-exercise e1RM deltas carried on
// the weekly aggregates. This deliberately diverges from
// AnalyzeExerciseProgression, which works on raw set logs.
func aggregateProgression(weeks []models.MuscleVolumeData) ProgressionAnalysis {
	first := clampNonNegative(weeks[0].AverageRIR)
	last := clampNonNegative(weeks[len(weeks)-1].AverageRIR)

	var trend ProgressionTrend
	switch {
	case first-last > 1:
		trend = TrendDeclining
	case last >= first:
		trend = TrendImproving
	default:
		trend = TrendMaintaining
	}

	var rates []float64
	var totalDrift float64
	for i, w := range weeks {
		if i == 0 {
			continue
		}
		for _, ex := range w.Exercises {
			rates = append(rates, ex.E1RMChangePercent)
		}
		totalDrift += clampNonNegative(weeks[i-1].AverageRIR) - clampNonNegative(w.AverageRIR)
	}

	return ProgressionAnalysis{
		Status:             ProgressionOK,
		Trend:              trend,
		AvgProgressionRate: Average(rates),
		TotalRIRDrift:      totalDrift,
		WeeksUsed:          len(weeks),
	}
}

func averageWeeklySets(weeks []models.MuscleVolumeData) float64 {
	sets := make([]float64, len(weeks))
	for i, w := range weeks {
		sets[i] = clampNonNegative(float64(w.WorkingSets))
	}
	return Average(sets)
}

// overloadedShareThreshold is the fraction of muscles that must agree before
// the whole block is classified as under-recovered or under-stimulated.
const overloadedShareThreshold = 0.3

// assessOverallRecovery classifies the block from the distribution of
// per-muscle verdicts. With no muscle reaching a verdict the block defaults
// to well_recovered.
func assessOverallRecovery(outcomes map[models.MuscleGroup]MuscleOutcome) RecoveryClassification {
	var decided, tooHigh, tooLow int
	for _, o := range outcomes {
		if o.Verdict == VerdictInsufficientData {
			continue
		}
		decided++
		switch o.Verdict {
		case VerdictTooHigh:
			tooHigh++
		case VerdictTooLow:
			tooLow++
		}
	}
	if decided == 0 {
		return WellRecovered
	}
	switch {
	case float64(tooHigh)/float64(decided) > overloadedShareThreshold:
		return UnderRecovered
	case float64(tooLow)/float64(decided) > overloadedShareThreshold:
		return UnderStimulated
	default:
		return WellRecovered
	}
}
