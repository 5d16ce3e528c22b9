package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// effectiveRIRCeiling is the highest RIR at which a working set still counts
// as effective stimulus.
const effectiveRIRCeiling = 4

// WeeklyMuscleVolume loads the set logs for a window starting at blockStart
// and aggregates them into per-muscle weekly volume data. Weeks are numbered
// from 1 at blockStart.
func (db *DB) WeeklyMuscleVolume(ctx context.Context, userID int, blockStart time.Time, weeks int) (map[models.MuscleGroup][]models.MuscleVolumeData, error) {
	end := blockStart.AddDate(0, 0, weeks*7)
	sets, err := db.QuerySetLogs(ctx, blockStart, end, userID)
	if err != nil {
		return nil, fmt.Errorf("loading sets for aggregation: %w", err)
	}
	return AggregateWeeklyVolume(sets, blockStart, weeks), nil
}

// AggregateWeeklyVolume buckets set logs into calendar weeks from blockStart
// and reduces each muscle's week to one MuscleVolumeData: set counts,
// tonnage, average RIR and form score, and the best set per exercise with
// week-over-week deltas. Weeks with no sets for a muscle are omitted from
// that muscle's series.
func AggregateWeeklyVolume(sets []models.SetLogRow, blockStart time.Time, weeks int) map[models.MuscleGroup][]models.MuscleVolumeData {
	type weekKey struct {
		muscle models.MuscleGroup
		week   int
	}
	buckets := make(map[weekKey][]models.SetLogRow)

	for _, s := range sets {
		week := int(s.LoggedAt.Sub(blockStart).Hours()/(24*7)) + 1
		if week < 1 || week > weeks || !s.Muscle.Valid() {
			continue
		}
		k := weekKey{muscle: s.Muscle, week: week}
		buckets[k] = append(buckets[k], s)
	}

	out := make(map[models.MuscleGroup][]models.MuscleVolumeData)
	for _, m := range models.AllMuscleGroups {
		var series []models.MuscleVolumeData
		for w := 1; w <= weeks; w++ {
			weekSets, ok := buckets[weekKey{muscle: m, week: w}]
			if !ok {
				continue
			}
			series = append(series, reduceWeek(m, w, weekSets))
		}
		if len(series) == 0 {
			continue
		}
		attachExerciseDeltas(series)
		out[m] = series
	}
	return out
}

// reduceWeek collapses one muscle-week of sets into a MuscleVolumeData.
func reduceWeek(m models.MuscleGroup, week int, sets []models.SetLogRow) models.MuscleVolumeData {
	data := models.MuscleVolumeData{Muscle: m, Week: week}

	var rirs, formScores []float64
	bestByExercise := make(map[string]models.ExerciseWeekPerformance)

	for _, s := range sets {
		data.TotalSets++
		if s.IsWarmup {
			continue
		}
		data.WorkingSets++
		if s.RIR <= effectiveRIRCeiling && s.Form != models.FormUgly {
			data.EffectiveSets++
		}
		data.TotalVolumeKg += s.WeightKg * float64(s.Reps)
		rirs = append(rirs, s.RIR)
		formScores = append(formScores, engine.FormScore(s.Form))

		e1rm := engine.EstimatedOneRepMax(s.WeightKg, s.Reps, s.RIR)
		best, seen := bestByExercise[s.ExerciseName]
		if !seen || e1rm > best.EstimatedOneRM {
			bestByExercise[s.ExerciseName] = models.ExerciseWeekPerformance{
				ExerciseName:   s.ExerciseName,
				Week:           week,
				WeightKg:       s.WeightKg,
				Reps:           s.Reps,
				RIR:            s.RIR,
				Form:           s.Form,
				EstimatedOneRM: e1rm,
			}
		}
	}

	data.AverageRIR = engine.Average(rirs)
	data.AverageFormScore = engine.Average(formScores)

	for _, perf := range bestByExercise {
		data.Exercises = append(data.Exercises, perf)
	}
	sort.Slice(data.Exercises, func(i, j int) bool {
		return data.Exercises[i].ExerciseName < data.Exercises[j].ExerciseName
	})
	return data
}

// attachExerciseDeltas fills in each week's per-exercise e1RM change, RIR
// drift, and form change against the previous week's best set for the same
// exercise.
func attachExerciseDeltas(series []models.MuscleVolumeData) {
	for i := 1; i < len(series); i++ {
		prev := make(map[string]models.ExerciseWeekPerformance, len(series[i-1].Exercises))
		for _, p := range series[i-1].Exercises {
			prev[p.ExerciseName] = p
		}
		for j, curr := range series[i].Exercises {
			p, ok := prev[curr.ExerciseName]
			if !ok {
				continue
			}
			if p.EstimatedOneRM > 0 {
				curr.E1RMChangePercent = (curr.EstimatedOneRM - p.EstimatedOneRM) / p.EstimatedOneRM * 100
			}
			curr.RIRDrift = p.RIR - curr.RIR
			curr.FormChange = engine.FormScore(p.Form) - engine.FormScore(curr.Form)
			series[i].Exercises[j] = curr
		}
	}
}
