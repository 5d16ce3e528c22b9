package export

import (
	"testing"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// TestSaveAndList verifies a round trip through the snapshot store: the
// report JSON survives, and listing returns newest first.
func TestSaveAndList(t *testing.T) {
	db, err := OpenSnapshotDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	first := &engine.MesocycleAnalysis{
		Weeks:           4,
		OverallRecovery: engine.WellRecovered,
		Outcomes: map[models.MuscleGroup]engine.MuscleOutcome{
			models.Chest: {Muscle: models.Chest, Verdict: engine.VerdictOptimal, Confidence: 90},
		},
	}
	second := &engine.MesocycleAnalysis{
		Weeks:           5,
		OverallRecovery: engine.UnderRecovered,
	}

	blockStart := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	if err := db.Save(1, blockStart, 4, first); err != nil {
		t.Fatal(err)
	}
	if err := db.Save(1, blockStart.AddDate(0, 0, 28), 5, second); err != nil {
		t.Fatal(err)
	}

	snaps, err := db.List(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	if snaps[0].Weeks != 5 {
		t.Errorf("newest snapshot weeks = %d, want 5", snaps[0].Weeks)
	}
	if snaps[1].BlockStart != "2026-05-04" {
		t.Errorf("block_start = %q, want 2026-05-04", snaps[1].BlockStart)
	}
	if got := snaps[1].Analysis.Outcomes[models.Chest].Verdict; got != engine.VerdictOptimal {
		t.Errorf("chest verdict = %q, want optimal", got)
	}
}

// TestListScopedToUser verifies snapshots for other users are not returned.
func TestListScopedToUser(t *testing.T) {
	db, err := OpenSnapshotDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	blockStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := db.Save(1, blockStart, 4, &engine.MesocycleAnalysis{Weeks: 4}); err != nil {
		t.Fatal(err)
	}
	if err := db.Save(2, blockStart, 4, &engine.MesocycleAnalysis{Weeks: 4}); err != nil {
		t.Fatal(err)
	}

	snaps, err := db.List(2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots for user 2, want 1", len(snaps))
	}
	if snaps[0].UserID != 2 {
		t.Errorf("user_id = %d, want 2", snaps[0].UserID)
	}
}
