package models

import "time"

// MuscleTolerance is the learned volume tolerance for one muscle group.
// MRV and MEV are weekly working-set counts.
// Invariant (enforced by the profile updater): EstimatedMEV <= EstimatedMRV - 2.
type MuscleTolerance struct {
	EstimatedMRV int            `json:"estimated_mrv"`
	EstimatedMEV int            `json:"estimated_mev"`
	Confidence   ConfidenceTier `json:"confidence"`
	DataPoints   int            `json:"data_points"`
	LastUpdated  time.Time      `json:"last_updated"`
}

// UserVolumeProfile is a user's full learned volume model. Created once at
// onboarding from baseline landmarks; mutated only by the profile updater
// after each completed mesocycle.
type UserVolumeProfile struct {
	UserID             int                             `json:"user_id"`
	Tolerances         map[MuscleGroup]MuscleTolerance `json:"tolerances"`
	RecoveryMultiplier float64                         `json:"recovery_multiplier"`
	Enhanced           bool                            `json:"enhanced"`
	TrainingAge        TrainingAge                     `json:"training_age"`
	UpdatedAt          time.Time                       `json:"updated_at"`
}

// Clone returns a deep copy so callers can update tolerances without
// mutating the original.
func (p UserVolumeProfile) Clone() UserVolumeProfile {
	out := p
	out.Tolerances = make(map[MuscleGroup]MuscleTolerance, len(p.Tolerances))
	for m, t := range p.Tolerances {
		out.Tolerances[m] = t
	}
	return out
}
