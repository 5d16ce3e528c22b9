package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// InsertSession stores a completed workout session summary.
func (db *DB) InsertSession(ctx context.Context, s models.WorkoutSessionRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sessions (id, user_id, completion_percent, session_rpe, completed_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		   SET completion_percent = $3, session_rpe = $4, completed_at = $5`,
		s.ID, s.UserID, s.CompletionPercent, s.SessionRPE, s.CompletedAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// QuerySessions retrieves completed sessions in a time range, oldest first.
func (db *DB) QuerySessions(ctx context.Context, start, end time.Time, userID int) ([]models.WorkoutSessionRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, completion_percent, session_rpe, completed_at
		 FROM workout_sessions
		 WHERE completed_at >= $1 AND completed_at < $2 AND user_id = $3
		 ORDER BY completed_at ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSessionRow
	for rows.Next() {
		var s models.WorkoutSessionRow
		if err := rows.Scan(&s.ID, &s.UserID, &s.CompletionPercent, &s.SessionRPE, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
