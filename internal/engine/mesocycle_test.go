package engine

import (
	"testing"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func volumeWeeks(m models.MuscleGroup, sets int, rirs ...float64) []models.MuscleVolumeData {
	weeks := make([]models.MuscleVolumeData, len(rirs))
	for i, r := range rirs {
		weeks[i] = models.MuscleVolumeData{
			Muscle:           m,
			Week:             i + 1,
			TotalSets:        sets + 2,
			WorkingSets:      sets,
			EffectiveSets:    sets,
			AverageRIR:       r,
			AverageFormScore: 0.9,
		}
	}
	return weeks
}

// TestAnalyzeMesocycleSkipsShortWindows verifies muscles with fewer than
// three weeks of data get no outcome.
func TestAnalyzeMesocycleSkipsShortWindows(t *testing.T) {
	weekly := map[models.MuscleGroup][]models.MuscleVolumeData{
		models.Chest:  volumeWeeks(models.Chest, 12, 2.5, 2.4, 2.5),
		models.Biceps: volumeWeeks(models.Biceps, 10, 2.5, 2.4),
	}
	profile := NewVolumeProfile(1, models.Intermediate, false, time.Now())

	got := AnalyzeMesocycle(weekly, nil, nil, profile)

	if _, ok := got.Outcomes[models.Chest]; !ok {
		t.Error("expected an outcome for chest")
	}
	if _, ok := got.Outcomes[models.Biceps]; ok {
		t.Error("biceps has only two weeks, expected no outcome")
	}
	if got.Weeks != 3 {
		t.Errorf("weeks = %d, want 3", got.Weeks)
	}
}

// TestAggregateProgressionTrend verifies the simplified RIR-based trend
// used on the aggregate path: a drop over 1 RIR is declining, flat or
// rising RIR is improving.
func TestAggregateProgressionTrend(t *testing.T) {
	cases := []struct {
		name string
		rirs []float64
		want ProgressionTrend
	}{
		{"big RIR drop", []float64{3.0, 2.0, 1.5}, TrendDeclining},
		{"steady RIR", []float64{2.0, 2.0, 2.0}, TrendImproving},
		{"rising RIR", []float64{2.0, 2.2, 2.5}, TrendImproving},
		{"small drop", []float64{2.5, 2.2, 2.0}, TrendMaintaining},
	}
	for _, tc := range cases {
		got := aggregateProgression(volumeWeeks(models.Chest, 12, tc.rirs...))
		if got.Trend != tc.want {
			t.Errorf("%s: trend = %s, want %s", tc.name, got.Trend, tc.want)
		}
		if got.Status != ProgressionOK {
			t.Errorf("%s: status = %s, want ok", tc.name, got.Status)
		}
	}
}

// TestAssessOverallRecovery verifies the >30% share rules and the
// well_recovered default when nothing has data.
func TestAssessOverallRecovery(t *testing.T) {
	outcome := func(v VolumeVerdict) MuscleOutcome { return MuscleOutcome{Verdict: v} }

	cases := []struct {
		name     string
		verdicts []VolumeVerdict
		want     RecoveryClassification
	}{
		{"mostly too high", []VolumeVerdict{VerdictTooHigh, VerdictTooHigh, VerdictOptimal}, UnderRecovered},
		{"mostly too low", []VolumeVerdict{VerdictTooLow, VerdictTooLow, VerdictOptimal, VerdictOptimal, VerdictOptimal}, UnderStimulated},
		{"balanced", []VolumeVerdict{VerdictOptimal, VerdictOptimal, VerdictOptimal, VerdictTooHigh}, WellRecovered},
		{"no data", []VolumeVerdict{VerdictInsufficientData, VerdictInsufficientData}, WellRecovered},
		{"empty", nil, WellRecovered},
	}
	for _, tc := range cases {
		outcomes := make(map[models.MuscleGroup]MuscleOutcome)
		for i, v := range tc.verdicts {
			outcomes[models.AllMuscleGroups[i]] = outcome(v)
		}
		if got := assessOverallRecovery(outcomes); got != tc.want {
			t.Errorf("%s: classification = %s, want %s", tc.name, got, tc.want)
		}
	}
}

// TestAnalyzeMesocycleOverstretchedMuscle verifies an end-to-end too_high
// verdict: heavy RIR drift, degrading form, and volume above the learned MRV.
func TestAnalyzeMesocycleOverstretchedMuscle(t *testing.T) {
	weeks := volumeWeeks(models.Chest, 26, 3.0, 1.8, 0.5)
	for i := range weeks {
		weeks[i].AverageFormScore = []float64{1.0, 0.7, 0.4}[i]
	}
	weekly := map[models.MuscleGroup][]models.MuscleVolumeData{models.Chest: weeks}
	profile := NewVolumeProfile(1, models.Intermediate, false, time.Now())

	got := AnalyzeMesocycle(weekly, nil, nil, profile)

	out, ok := got.Outcomes[models.Chest]
	if !ok {
		t.Fatal("expected an outcome for chest")
	}
	if out.Verdict != VerdictTooHigh {
		t.Errorf("verdict = %s, want too_high", out.Verdict)
	}
	if out.SuggestedAdjustment >= 0 {
		t.Errorf("adjustment = %d, want negative", out.SuggestedAdjustment)
	}
	if got.OverallRecovery != UnderRecovered {
		t.Errorf("overall = %s, want under_recovered", got.OverallRecovery)
	}
}
