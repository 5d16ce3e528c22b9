package engine

import (
	"testing"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// TestAdjustedBaselineMultipliers verifies the training-age and enhancement
// multipliers against the chest baseline.
func TestAdjustedBaselineMultipliers(t *testing.T) {
	base := BaselineLandmarks(models.Chest)

	cases := []struct {
		name     string
		age      models.TrainingAge
		enhanced bool
		wantMRV  int
	}{
		{"novice", models.Novice, false, 15},        // 22 * 0.7 = 15.4 -> 15
		{"intermediate", models.Intermediate, false, 22},
		{"advanced", models.Advanced, false, 25},    // 22 * 1.15 = 25.3 -> 25
		{"enhanced intermediate", models.Intermediate, true, 31}, // 22 * 1.4 = 30.8 -> 31
	}
	for _, tc := range cases {
		got := AdjustedBaseline(models.Chest, tc.age, tc.enhanced)
		if got.MRV != tc.wantMRV {
			t.Errorf("%s: MRV = %d, want %d (base %d)", tc.name, got.MRV, tc.wantMRV, base.MRV)
		}
	}
}

// TestNewVolumeProfileSeeding verifies that a fresh profile covers every
// muscle group with low-confidence, zero-data tolerances.
func TestNewVolumeProfileSeeding(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := NewVolumeProfile(42, models.Intermediate, false, now)

	if p.UserID != 42 {
		t.Errorf("UserID = %d, want 42", p.UserID)
	}
	if p.RecoveryMultiplier != 1.0 {
		t.Errorf("RecoveryMultiplier = %v, want 1.0", p.RecoveryMultiplier)
	}
	if len(p.Tolerances) != len(models.AllMuscleGroups) {
		t.Fatalf("Tolerances has %d entries, want %d", len(p.Tolerances), len(models.AllMuscleGroups))
	}
	for _, m := range models.AllMuscleGroups {
		tol, ok := p.Tolerances[m]
		if !ok {
			t.Errorf("missing tolerance for %s", m)
			continue
		}
		if tol.Confidence != models.ConfidenceLow {
			t.Errorf("%s: confidence = %s, want low", m, tol.Confidence)
		}
		if tol.DataPoints != 0 {
			t.Errorf("%s: data points = %d, want 0", m, tol.DataPoints)
		}
		if tol.EstimatedMEV > tol.EstimatedMRV {
			t.Errorf("%s: MEV %d exceeds MRV %d", m, tol.EstimatedMEV, tol.EstimatedMRV)
		}
	}
}
