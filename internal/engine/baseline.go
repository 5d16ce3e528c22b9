package engine

import (
	"math"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// VolumeLandmarks holds the research-anchored weekly set landmarks for one
// muscle group: minimum effective, maximum recoverable, and the optimal
// point between them.
type VolumeLandmarks struct {
	MEV     int `json:"mev"`
	MRV     int `json:"mrv"`
	Optimal int `json:"optimal"`
}

// baselineLandmarks seeds new users before any personal data exists.
// Values are population-average weekly working sets for an intermediate,
// unenhanced trainee.
var baselineLandmarks = map[models.MuscleGroup]VolumeLandmarks{
	models.Chest:      {MEV: 6, MRV: 22, Optimal: 14},
	models.Back:       {MEV: 8, MRV: 25, Optimal: 16},
	models.Shoulders:  {MEV: 6, MRV: 26, Optimal: 16},
	models.Biceps:     {MEV: 5, MRV: 20, Optimal: 14},
	models.Triceps:    {MEV: 4, MRV: 18, Optimal: 10},
	models.Quads:      {MEV: 6, MRV: 20, Optimal: 12},
	models.Hamstrings: {MEV: 4, MRV: 16, Optimal: 10},
	models.Glutes:     {MEV: 4, MRV: 16, Optimal: 10},
	models.Calves:     {MEV: 6, MRV: 20, Optimal: 12},
	models.Abs:        {MEV: 4, MRV: 25, Optimal: 16},
	models.Traps:      {MEV: 2, MRV: 12, Optimal: 8},
	models.Forearms:   {MEV: 2, MRV: 12, Optimal: 8},
	models.Adductors:  {MEV: 2, MRV: 12, Optimal: 8},
}

// BaselineLandmarks returns the unadjusted landmarks for a muscle group.
func BaselineLandmarks(m models.MuscleGroup) VolumeLandmarks {
	return baselineLandmarks[m]
}

// trainingAgeMultiplier scales baseline volume by how adapted the trainee is.
func trainingAgeMultiplier(age models.TrainingAge) float64 {
	switch age {
	case models.Novice:
		return 0.7
	case models.Intermediate:
		return 1.0
	case models.Advanced:
		return 1.15
	}
	return 1.0
}

// enhancedMultiplier reflects the higher recoverable volume under
// pharmacological enhancement.
const enhancedMultiplier = 1.4

// AdjustedBaseline applies training-age and enhancement multipliers to the
// baseline landmarks, rounding each to the nearest whole set.
func AdjustedBaseline(m models.MuscleGroup, age models.TrainingAge, enhanced bool) VolumeLandmarks {
	base := baselineLandmarks[m]
	mult := trainingAgeMultiplier(age)
	if enhanced {
		mult *= enhancedMultiplier
	}
	return VolumeLandmarks{
		MEV:     int(math.Round(float64(base.MEV) * mult)),
		MRV:     int(math.Round(float64(base.MRV) * mult)),
		Optimal: int(math.Round(float64(base.Optimal) * mult)),
	}
}

// NewVolumeProfile seeds a fresh profile from the adjusted baselines. Every
// tolerance starts at low confidence with zero observed mesocycles.
func NewVolumeProfile(userID int, age models.TrainingAge, enhanced bool, now time.Time) models.UserVolumeProfile {
	tolerances := make(map[models.MuscleGroup]models.MuscleTolerance, len(models.AllMuscleGroups))
	for _, m := range models.AllMuscleGroups {
		adjusted := AdjustedBaseline(m, age, enhanced)
		tolerances[m] = models.MuscleTolerance{
			EstimatedMRV: adjusted.MRV,
			EstimatedMEV: adjusted.MEV,
			Confidence:   models.ConfidenceLow,
			DataPoints:   0,
			LastUpdated:  now,
		}
	}
	return models.UserVolumeProfile{
		UserID:             userID,
		Tolerances:         tolerances,
		RecoveryMultiplier: 1.0,
		Enhanced:           enhanced,
		TrainingAge:        age,
		UpdatedAt:          now,
	}
}
