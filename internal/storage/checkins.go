package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// UpsertCheckin stores a daily check-in, replacing any earlier answers for
// the same day.
func (db *DB) UpsertCheckin(ctx context.Context, c models.CheckinRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO daily_checkins (user_id, checkin_date, sleep_quality, energy, soreness, mood, stress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, checkin_date) DO UPDATE
		   SET sleep_quality = $3, energy = $4, soreness = $5, mood = $6, stress = $7`,
		c.UserID, c.Date, c.SleepQuality, c.Energy, c.Soreness, c.Mood, c.Stress)
	if err != nil {
		return fmt.Errorf("upserting check-in: %w", err)
	}
	return nil
}

// QueryCheckins retrieves daily check-ins in a date range, oldest first.
func (db *DB) QueryCheckins(ctx context.Context, start, end time.Time, userID int) ([]models.CheckinRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, checkin_date, sleep_quality, energy, soreness, mood, stress
		 FROM daily_checkins
		 WHERE checkin_date >= $1 AND checkin_date < $2 AND user_id = $3
		 ORDER BY checkin_date ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying check-ins: %w", err)
	}
	defer rows.Close()

	var result []models.CheckinRow
	for rows.Next() {
		var c models.CheckinRow
		if err := rows.Scan(&c.UserID, &c.Date, &c.SleepQuality, &c.Energy,
			&c.Soreness, &c.Mood, &c.Stress); err != nil {
			return nil, fmt.Errorf("scanning check-in: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
