package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// ErrProfileNotFound is returned when a user has no volume profile yet.
var ErrProfileNotFound = errors.New("volume profile not found")

// GetVolumeProfile loads a user's learned volume profile. Tolerances are
// stored as a JSONB document keyed by muscle group.
func (db *DB) GetVolumeProfile(ctx context.Context, userID int) (*models.UserVolumeProfile, error) {
	var p models.UserVolumeProfile
	var tolerances []byte

	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, tolerances, recovery_multiplier, enhanced, training_age, updated_at
		 FROM volume_profiles
		 WHERE user_id = $1`,
		userID).Scan(&p.UserID, &tolerances, &p.RecoveryMultiplier, &p.Enhanced, &p.TrainingAge, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying volume profile: %w", err)
	}

	if err := json.Unmarshal(tolerances, &p.Tolerances); err != nil {
		return nil, fmt.Errorf("decoding tolerances: %w", err)
	}
	return &p, nil
}

// SaveVolumeProfile upserts a user's volume profile. Profiles are updated in
// place and never deleted; the updated_at timestamp marks the supersession.
func (db *DB) SaveVolumeProfile(ctx context.Context, p models.UserVolumeProfile) error {
	tolerances, err := json.Marshal(p.Tolerances)
	if err != nil {
		return fmt.Errorf("encoding tolerances: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO volume_profiles (user_id, tolerances, recovery_multiplier, enhanced, training_age, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE
		   SET tolerances = $2, recovery_multiplier = $3, enhanced = $4,
		       training_age = $5, updated_at = $6`,
		p.UserID, tolerances, p.RecoveryMultiplier, p.Enhanced, p.TrainingAge, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving volume profile: %w", err)
	}
	return nil
}
