package models

import (
	"time"

	"github.com/google/uuid"
)

// SetLogRow is one logged set, ready for insertion into the set_logs table.
type SetLogRow struct {
	UserID       int         `json:"user_id"`
	SessionID    uuid.UUID   `json:"session_id"`
	ExerciseName string      `json:"exercise_name"`
	Muscle       MuscleGroup `json:"muscle"`
	WeightKg     float64     `json:"weight_kg"`
	Reps         int         `json:"reps"`
	RIR          float64     `json:"rir"`
	Form         FormRating  `json:"form"`
	IsWarmup     bool        `json:"is_warmup"`
	LoggedAt     time.Time   `json:"logged_at"`
}

// CheckinRow is one daily subjective check-in. All factors are rated 1-5;
// a nil pointer means the user skipped that question.
type CheckinRow struct {
	UserID       int       `json:"user_id"`
	Date         time.Time `json:"date"`
	SleepQuality *float64  `json:"sleep_quality,omitempty"`
	Energy       *float64  `json:"energy,omitempty"`
	Soreness     *float64  `json:"soreness,omitempty"`
	Mood         *float64  `json:"mood,omitempty"`
	Stress       *float64  `json:"stress,omitempty"`
}

// WorkoutSessionRow summarizes one completed workout session.
type WorkoutSessionRow struct {
	ID                uuid.UUID `json:"id"`
	UserID            int       `json:"user_id"`
	CompletionPercent float64   `json:"completion_percent"`
	SessionRPE        float64   `json:"session_rpe"`
	CompletedAt       time.Time `json:"completed_at"`
}
