package engine

import (
	"math"
	"testing"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func weeksWithFormScore(scores ...float64) []models.MuscleVolumeData {
	weeks := make([]models.MuscleVolumeData, len(scores))
	for i, s := range scores {
		weeks[i] = models.MuscleVolumeData{Week: i + 1, AverageFormScore: s}
	}
	return weeks
}

// TestAnalyzeFormTrend verifies the slope-based classification and the
// first-minus-last degradation value.
func TestAnalyzeFormTrend(t *testing.T) {
	cases := []struct {
		name     string
		scores   []float64
		wantDeg  float64
		wantTrend FormTrend
	}{
		{"degrading", []float64{1.0, 0.8, 0.5}, 0.5, FormDegrading},
		{"improving", []float64{0.5, 0.75, 1.0}, -0.5, FormImproving},
		{"stable", []float64{0.9, 0.9, 0.9}, 0, FormStable},
		{"noisy but flat", []float64{0.9, 0.88, 0.9}, 0, FormStable},
	}
	for _, tc := range cases {
		got := AnalyzeFormTrend(weeksWithFormScore(tc.scores...))
		if math.Abs(got.AvgDegradation-tc.wantDeg) > 1e-9 {
			t.Errorf("%s: degradation = %v, want %v", tc.name, got.AvgDegradation, tc.wantDeg)
		}
		if got.Trend != tc.wantTrend {
			t.Errorf("%s: trend = %s, want %s", tc.name, got.Trend, tc.wantTrend)
		}
	}
}

// TestAnalyzeFormTrendTooFewWeeks verifies the neutral sentinel for a
// single-week window.
func TestAnalyzeFormTrendTooFewWeeks(t *testing.T) {
	got := AnalyzeFormTrend(weeksWithFormScore(0.2))
	if got.AvgDegradation != 0 || got.Trend != FormStable {
		t.Errorf("got {%v, %s}, want {0, stable}", got.AvgDegradation, got.Trend)
	}
}
