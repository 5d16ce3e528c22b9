package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// InsertSetLogs batch-inserts logged sets. Returns the count inserted.
func (db *DB) InsertSetLogs(ctx context.Context, rows []models.SetLogRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO set_logs (user_id, session_id, exercise_name, muscle,
		weight_kg, reps, rir, form_rating, is_warmup, logged_at) VALUES `
	args := make([]any, 0, len(rows)*10)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 10
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5,
			base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args, r.UserID, r.SessionID, r.ExerciseName, r.Muscle,
			r.WeightKg, r.Reps, r.RIR, r.Form, r.IsWarmup, r.LoggedAt)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting set logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QuerySetLogs retrieves set logs in a time range, oldest first.
func (db *DB) QuerySetLogs(ctx context.Context, start, end time.Time, userID int) ([]models.SetLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, session_id, exercise_name, muscle, weight_kg, reps,
		        rir, form_rating, is_warmup, logged_at
		 FROM set_logs
		 WHERE logged_at >= $1 AND logged_at < $2 AND user_id = $3
		 ORDER BY logged_at ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying set logs: %w", err)
	}
	defer rows.Close()

	var result []models.SetLogRow
	for rows.Next() {
		var r models.SetLogRow
		if err := rows.Scan(&r.UserID, &r.SessionID, &r.ExerciseName, &r.Muscle,
			&r.WeightKg, &r.Reps, &r.RIR, &r.Form, &r.IsWarmup, &r.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning set log: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// QueryExerciseSets retrieves working and warm-up sets for one exercise
// (exact name match) in a time range, oldest first.
func (db *DB) QueryExerciseSets(ctx context.Context, exercise string, start, end time.Time, userID int) ([]models.SetLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, session_id, exercise_name, muscle, weight_kg, reps,
		        rir, form_rating, is_warmup, logged_at
		 FROM set_logs
		 WHERE logged_at >= $1 AND logged_at < $2 AND user_id = $3
		   AND exercise_name = $4
		 ORDER BY logged_at ASC`,
		start, end, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("querying exercise sets: %w", err)
	}
	defer rows.Close()

	var result []models.SetLogRow
	for rows.Next() {
		var r models.SetLogRow
		if err := rows.Scan(&r.UserID, &r.SessionID, &r.ExerciseName, &r.Muscle,
			&r.WeightKg, &r.Reps, &r.RIR, &r.Form, &r.IsWarmup, &r.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise set: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
