// Package advisor wires the pure analysis engine to the storage layer. It
// owns the workflows the application triggers: mid-block fatigue checks,
// dashboard summaries, and the end-of-mesocycle rollover that folds a
// completed block into the learned profile.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
	"github.com/Joshfkon/workout-app-sub012/internal/storage"
)

// trailingWindowWeeks is the window the fatigue monitor looks back over.
const trailingWindowWeeks = 3

// Advisor holds dependencies for analysis workflows.
type Advisor struct {
	db  *storage.DB
	log *slog.Logger
}

// New creates an Advisor.
func New(db *storage.DB, log *slog.Logger) *Advisor {
	return &Advisor{db: db, log: log}
}

// Profile returns the user's volume profile, seeding one from the baseline
// model on first access.
func (a *Advisor) Profile(ctx context.Context, userID int) (*models.UserVolumeProfile, error) {
	p, err := a.db.GetVolumeProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrProfileNotFound) {
		return nil, err
	}

	seeded := engine.NewVolumeProfile(userID, models.Intermediate, false, time.Now().UTC())
	if err := a.db.SaveVolumeProfile(ctx, seeded); err != nil {
		return nil, fmt.Errorf("seeding volume profile: %w", err)
	}
	a.log.Info("seeded baseline volume profile", "user_id", userID)
	return &seeded, nil
}

// AnalyzeMesocycle computes the end-of-block report for the window starting
// at blockStart without touching the stored profile. Safe to call mid-block.
func (a *Advisor) AnalyzeMesocycle(ctx context.Context, userID int, blockStart time.Time, weeks int) (*engine.MesocycleAnalysis, error) {
	profile, err := a.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return a.analyze(ctx, userID, profile, blockStart, weeks)
}

func (a *Advisor) analyze(ctx context.Context, userID int, profile *models.UserVolumeProfile, blockStart time.Time, weeks int) (*engine.MesocycleAnalysis, error) {
	weekly, err := a.db.WeeklyMuscleVolume(ctx, userID, blockStart, weeks)
	if err != nil {
		return nil, err
	}

	end := blockStart.AddDate(0, 0, weeks*7)
	checkins, err := a.db.QueryCheckins(ctx, blockStart, end, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := a.db.QuerySessions(ctx, blockStart, end, userID)
	if err != nil {
		return nil, err
	}

	analysis := engine.AnalyzeMesocycle(weekly, checkins, sessions, *profile)
	return &analysis, nil
}

// CompleteMesocycle runs the end-of-block analysis, folds it into the
// learned profile, and persists the result. The caller must ensure a single
// writer per rollover event: two concurrent completions would both apply the
// EMA from the same stale base and one contribution would be lost.
func (a *Advisor) CompleteMesocycle(ctx context.Context, userID int, blockStart time.Time, weeks int) (*engine.MesocycleAnalysis, *models.UserVolumeProfile, error) {
	profile, err := a.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	analysis, err := a.analyze(ctx, userID, profile, blockStart, weeks)
	if err != nil {
		return nil, nil, err
	}

	updated := engine.UpdateVolumeProfile(*profile, *analysis, time.Now().UTC())
	if err := a.db.SaveVolumeProfile(ctx, updated); err != nil {
		return nil, nil, fmt.Errorf("persisting updated profile: %w", err)
	}

	a.log.Info("mesocycle completed",
		"user_id", userID,
		"weeks", weeks,
		"outcomes", len(analysis.Outcomes),
		"overall", analysis.OverallRecovery,
	)
	return analysis, &updated, nil
}

// FatigueAlerts runs the fatigue monitor over the trailing three weeks.
func (a *Advisor) FatigueAlerts(ctx context.Context, userID int) ([]engine.FatigueAlert, error) {
	profile, err := a.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := startOfWeek(time.Now().UTC()).AddDate(0, 0, -7*(trailingWindowWeeks-1))
	recent, err := a.db.WeeklyMuscleVolume(ctx, userID, start, trailingWindowWeeks)
	if err != nil {
		return nil, err
	}

	return engine.MonitorFatigue(recent, *profile), nil
}

// VolumeSummary builds the dashboard cards for the current week against the
// previous one.
func (a *Advisor) VolumeSummary(ctx context.Context, userID int) ([]engine.VolumeSummary, error) {
	profile, err := a.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	prevStart := startOfWeek(time.Now().UTC()).AddDate(0, 0, -7)
	weekly, err := a.db.WeeklyMuscleVolume(ctx, userID, prevStart, 2)
	if err != nil {
		return nil, err
	}

	current := make(map[models.MuscleGroup]models.MuscleVolumeData)
	previous := make(map[models.MuscleGroup]models.MuscleVolumeData)
	for m, series := range weekly {
		for _, w := range series {
			switch w.Week {
			case 1:
				previous[m] = w
			case 2:
				current[m] = w
			}
		}
	}

	return engine.BuildVolumeSummary(current, previous, *profile), nil
}

// ExerciseProgression analyzes one exercise's week-over-week performance
// from raw set logs.
func (a *Advisor) ExerciseProgression(ctx context.Context, userID int, exercise string, start, end time.Time) (*engine.ProgressionAnalysis, error) {
	sets, err := a.db.QueryExerciseSets(ctx, exercise, start, end, userID)
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(start)
	weekCount := int(end.Sub(weekStart).Hours()/(24*7)) + 1
	weeks := make([][]models.SetLogRow, weekCount)
	for _, s := range sets {
		idx := int(s.LoggedAt.Sub(weekStart).Hours() / (24 * 7))
		if idx < 0 || idx >= weekCount {
			continue
		}
		weeks[idx] = append(weeks[idx], s)
	}

	analysis := engine.AnalyzeExerciseProgression(exercise, weeks)
	return &analysis, nil
}

// RecoveryCorrelation correlates check-in recovery scores with workout
// performance over a window.
func (a *Advisor) RecoveryCorrelation(ctx context.Context, userID int, start, end time.Time) (*engine.RecoveryCorrelationResult, error) {
	checkins, err := a.db.QueryCheckins(ctx, start.AddDate(0, 0, -1), end, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := a.db.QuerySessions(ctx, start, end, userID)
	if err != nil {
		return nil, err
	}

	result := engine.AnalyzeRecoveryCorrelation(checkins, sessions)
	return &result, nil
}

// startOfWeek truncates t to the Monday of its ISO week, midnight UTC.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
