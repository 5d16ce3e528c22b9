package engine

import (
	"testing"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func summaryProfile(m models.MuscleGroup, mrv, mev int) models.UserVolumeProfile {
	return models.UserVolumeProfile{
		Tolerances: map[models.MuscleGroup]models.MuscleTolerance{
			m: {EstimatedMRV: mrv, EstimatedMEV: mev},
		},
	}
}

func currentWeek(m models.MuscleGroup, sets int) map[models.MuscleGroup]models.MuscleVolumeData {
	return map[models.MuscleGroup]models.MuscleVolumeData{
		m: {Muscle: m, WorkingSets: sets},
	}
}

// TestBuildVolumeSummaryStatusBands verifies the status ladder, including
// below_mev taking precedence over the percent-of-MRV bands.
func TestBuildVolumeSummaryStatusBands(t *testing.T) {
	cases := []struct {
		name string
		sets int
		mrv  int
		mev  int
		want VolumeStatus
	}{
		{"below MEV beats low", 5, 20, 8, StatusBelowMEV}, // 25% of MRV would read low
		{"low", 9, 20, 8, StatusLow},                      // 45%
		{"optimal", 14, 20, 8, StatusOptimal},             // 70%
		{"high", 17, 20, 8, StatusHigh},                   // 85%
		{"at limit", 20, 20, 8, StatusAtLimit},            // 100%
		{"over limit", 23, 20, 8, StatusAtLimit},
	}
	for _, tc := range cases {
		got := BuildVolumeSummary(
			currentWeek(models.Chest, tc.sets),
			nil,
			summaryProfile(models.Chest, tc.mrv, tc.mev),
		)
		if len(got) != 1 {
			t.Fatalf("%s: got %d summaries, want 1", tc.name, len(got))
		}
		if got[0].Status != tc.want {
			t.Errorf("%s: status = %s, want %s", tc.name, got[0].Status, tc.want)
		}
	}
}

// TestBuildVolumeSummaryTrend verifies the week-over-week trend with its
// one-set dead band.
func TestBuildVolumeSummaryTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		previous int
		want     VolumeTrend
	}{
		{"clearly up", 14, 10, VolumeUp},
		{"clearly down", 10, 14, VolumeDown},
		{"one more is stable", 11, 10, VolumeStable},
		{"one fewer is stable", 10, 11, VolumeStable},
		{"same", 12, 12, VolumeStable},
	}
	for _, tc := range cases {
		got := BuildVolumeSummary(
			currentWeek(models.Back, tc.current),
			currentWeek(models.Back, tc.previous),
			summaryProfile(models.Back, 25, 8),
		)
		if got[0].Trend != tc.want {
			t.Errorf("%s: trend = %s, want %s", tc.name, got[0].Trend, tc.want)
		}
	}
}

// TestBuildVolumeSummaryPercentOfMRV verifies the rounded percent and that
// muscles missing from the current week are omitted entirely.
func TestBuildVolumeSummaryPercentOfMRV(t *testing.T) {
	got := BuildVolumeSummary(
		currentWeek(models.Chest, 13),
		nil,
		summaryProfile(models.Chest, 18, 6),
	)
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1 (absent muscles omitted)", len(got))
	}
	// 13/18 = 72.2% -> 72.
	if got[0].PercentOfMRV != 72 {
		t.Errorf("percent of MRV = %d, want 72", got[0].PercentOfMRV)
	}
}
