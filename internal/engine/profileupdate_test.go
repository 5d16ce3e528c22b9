package engine

import (
	"testing"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func profileWith(m models.MuscleGroup, mrv, mev int) models.UserVolumeProfile {
	return models.UserVolumeProfile{
		UserID: 1,
		Tolerances: map[models.MuscleGroup]models.MuscleTolerance{
			m: {EstimatedMRV: mrv, EstimatedMEV: mev, Confidence: models.ConfidenceLow},
		},
		RecoveryMultiplier: 1.0,
		TrainingAge:        models.Intermediate,
	}
}

func analysisWith(m models.MuscleGroup, verdict VolumeVerdict, observedSets float64) MesocycleAnalysis {
	return MesocycleAnalysis{
		Outcomes: map[models.MuscleGroup]MuscleOutcome{
			m: {Muscle: m, Verdict: verdict, AvgWeeklySets: observedSets},
		},
	}
}

// TestUpdateVolumeProfileTooHigh verifies the EMA pull-down: MRV 18 with 15
// observed sets under a too_high verdict lands at round(0.3*14 + 0.7*18) = 17.
func TestUpdateVolumeProfileTooHigh(t *testing.T) {
	now := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	p := profileWith(models.Chest, 18, 8)

	got := UpdateVolumeProfile(p, analysisWith(models.Chest, VerdictTooHigh, 15), now)

	tol := got.Tolerances[models.Chest]
	if tol.EstimatedMRV != 17 {
		t.Errorf("MRV = %d, want 17", tol.EstimatedMRV)
	}
	if tol.DataPoints != 1 {
		t.Errorf("data points = %d, want 1", tol.DataPoints)
	}
	if !tol.LastUpdated.Equal(now) {
		t.Errorf("last updated = %v, want %v", tol.LastUpdated, now)
	}
}

// TestUpdateVolumeProfileTooLow verifies both MRV and MEV move upward under
// a too_low verdict.
func TestUpdateVolumeProfileTooLow(t *testing.T) {
	now := time.Now()
	p := profileWith(models.Back, 18, 8)

	got := UpdateVolumeProfile(p, analysisWith(models.Back, VerdictTooLow, 20), now)

	tol := got.Tolerances[models.Back]
	// MRV target max(18, 23) = 23 -> round(0.3*23 + 0.7*18) = round(19.5) = 20.
	if tol.EstimatedMRV != 20 {
		t.Errorf("MRV = %d, want 20", tol.EstimatedMRV)
	}
	// MEV target max(8, 20) = 20 -> round(0.3*20 + 0.7*8) = round(11.6) = 12.
	if tol.EstimatedMEV != 12 {
		t.Errorf("MEV = %d, want 12", tol.EstimatedMEV)
	}
}

// TestUpdateVolumeProfileMEVClamp verifies the invariant
// estimatedMEV <= estimatedMRV - 2 after every update.
func TestUpdateVolumeProfileMEVClamp(t *testing.T) {
	now := time.Now()
	p := profileWith(models.Biceps, 10, 8)

	got := UpdateVolumeProfile(p, analysisWith(models.Biceps, VerdictTooHigh, 8), now)

	tol := got.Tolerances[models.Biceps]
	if tol.EstimatedMEV > tol.EstimatedMRV-2 {
		t.Errorf("MEV %d violates MEV <= MRV-2 with MRV %d", tol.EstimatedMEV, tol.EstimatedMRV)
	}
}

// TestUpdateVolumeProfileInsufficientDataUntouched verifies muscles without
// a verdict keep their tolerance and data-point count.
func TestUpdateVolumeProfileInsufficientDataUntouched(t *testing.T) {
	now := time.Now()
	p := profileWith(models.Quads, 20, 6)

	got := UpdateVolumeProfile(p, analysisWith(models.Quads, VerdictInsufficientData, 12), now)

	tol := got.Tolerances[models.Quads]
	if tol.EstimatedMRV != 20 || tol.EstimatedMEV != 6 || tol.DataPoints != 0 {
		t.Errorf("tolerance changed for insufficient_data verdict: %+v", tol)
	}
}

// TestUpdateVolumeProfileConfidenceTiers verifies confidence climbs with
// accumulated data points: 2 -> medium, 4 -> high.
func TestUpdateVolumeProfileConfidenceTiers(t *testing.T) {
	now := time.Now()
	p := profileWith(models.Chest, 18, 8)
	a := analysisWith(models.Chest, VerdictOptimal, 14)

	for i := 1; i <= 4; i++ {
		p = UpdateVolumeProfile(p, a, now)
		tol := p.Tolerances[models.Chest]
		want := models.ConfidenceLow
		switch {
		case i >= 4:
			want = models.ConfidenceHigh
		case i >= 2:
			want = models.ConfidenceMedium
		}
		if tol.Confidence != want {
			t.Errorf("after %d updates: confidence = %s, want %s", i, tol.Confidence, want)
		}
	}
}

// TestUpdateVolumeProfilePure verifies the caller's profile is not mutated.
func TestUpdateVolumeProfilePure(t *testing.T) {
	p := profileWith(models.Chest, 18, 8)
	_ = UpdateVolumeProfile(p, analysisWith(models.Chest, VerdictTooHigh, 15), time.Now())

	tol := p.Tolerances[models.Chest]
	if tol.EstimatedMRV != 18 || tol.EstimatedMEV != 8 || tol.DataPoints != 0 {
		t.Errorf("input profile mutated: %+v", tol)
	}
}
