package engine

import (
	"math"
	"testing"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func weeksWithRIR(rirs ...float64) []models.MuscleVolumeData {
	weeks := make([]models.MuscleVolumeData, len(rirs))
	for i, r := range rirs {
		weeks[i] = models.MuscleVolumeData{Week: i + 1, AverageRIR: r}
	}
	return weeks
}

// TestCalculateRIRDriftSignificance verifies the full significance ladder:
// concerning on large drift or moderate drift with progressive fatigue,
// elevated on drift just over 1, else normal.
func TestCalculateRIRDriftSignificance(t *testing.T) {
	cases := []struct {
		name      string
		rirs      []float64
		wantDrift float64
		wantSig   DriftSignificance
	}{
		{"steep drift", []float64{3.0, 1.5, 0.5}, 2.5, DriftConcerning},
		{"moderate progressive drift", []float64{3.0, 2.0, 1.2}, 1.8, DriftConcerning},
		{"moderate late drift", []float64{3.0, 3.2, 1.8}, 1.2, DriftElevated},
		{"mild drift", []float64{3.0, 2.8, 2.5}, 0.5, DriftNormal},
		{"no drift", []float64{2.0, 2.0, 2.0}, 0, DriftNormal},
	}
	for _, tc := range cases {
		got := CalculateRIRDrift(weeksWithRIR(tc.rirs...))
		if math.Abs(got.Drift-tc.wantDrift) > 1e-9 {
			t.Errorf("%s: drift = %v, want %v", tc.name, got.Drift, tc.wantDrift)
		}
		if got.Significance != tc.wantSig {
			t.Errorf("%s: significance = %s, want %s", tc.name, got.Significance, tc.wantSig)
		}
	}
}

// TestCalculateRIRDriftTooFewWeeks verifies the neutral sentinel for short
// windows.
func TestCalculateRIRDriftTooFewWeeks(t *testing.T) {
	got := CalculateRIRDrift(weeksWithRIR(3.0, 1.0))
	if got.Drift != 0 {
		t.Errorf("drift = %v, want 0", got.Drift)
	}
	if got.Significance != DriftNormal {
		t.Errorf("significance = %s, want normal", got.Significance)
	}
}

// TestCalculateRIRDriftNegativeInput verifies malformed negative RIR values
// are clamped instead of producing phantom drift.
func TestCalculateRIRDriftNegativeInput(t *testing.T) {
	got := CalculateRIRDrift(weeksWithRIR(-5, -5, -5))
	if got.Drift != 0 {
		t.Errorf("drift = %v, want 0 for clamped input", got.Drift)
	}
}
