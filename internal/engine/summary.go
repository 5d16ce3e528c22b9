package engine

import (
	"math"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// VolumeStatus is the dashboard status for one muscle's current week.
type VolumeStatus string

const (
	StatusBelowMEV VolumeStatus = "below_mev"
	StatusLow      VolumeStatus = "low"
	StatusOptimal  VolumeStatus = "optimal"
	StatusHigh     VolumeStatus = "high"
	StatusAtLimit  VolumeStatus = "at_limit"
)

// VolumeTrend compares the current week's volume to the previous week's.
type VolumeTrend string

const (
	VolumeUp     VolumeTrend = "up"
	VolumeDown   VolumeTrend = "down"
	VolumeStable VolumeTrend = "stable"
)

// VolumeSummary is one dashboard card: where a muscle's current volume sits
// relative to the learned profile.
type VolumeSummary struct {
	Muscle       models.MuscleGroup `json:"muscle"`
	CurrentSets  int                `json:"current_sets"`
	PreviousSets int                `json:"previous_sets"`
	PercentOfMRV int                `json:"percent_of_mrv"`
	Status       VolumeStatus       `json:"status"`
	Trend        VolumeTrend        `json:"trend"`
}

// BuildVolumeSummary maps the current week's per-muscle volume to dashboard
// statuses. Muscles absent from the current week are omitted. The below_mev
// status takes precedence over the percent-of-MRV bands.
func BuildVolumeSummary(
	current map[models.MuscleGroup]models.MuscleVolumeData,
	previous map[models.MuscleGroup]models.MuscleVolumeData,
	profile models.UserVolumeProfile,
) []VolumeSummary {
	var out []VolumeSummary
	for _, m := range models.AllMuscleGroups {
		cur, ok := current[m]
		if !ok {
			continue
		}
		tol := profile.Tolerances[m]
		prevSets := previous[m].WorkingSets

		percent := 0
		if tol.EstimatedMRV > 0 {
			percent = int(math.Round(100 * float64(cur.WorkingSets) / float64(tol.EstimatedMRV)))
		}

		var status VolumeStatus
		switch {
		case cur.WorkingSets < tol.EstimatedMEV:
			status = StatusBelowMEV
		case percent < 50:
			status = StatusLow
		case percent >= 100:
			status = StatusAtLimit
		case percent >= 85:
			status = StatusHigh
		default:
			status = StatusOptimal
		}

		var trend VolumeTrend
		switch {
		case cur.WorkingSets > prevSets+1:
			trend = VolumeUp
		case cur.WorkingSets < prevSets-1:
			trend = VolumeDown
		default:
			trend = VolumeStable
		}

		out = append(out, VolumeSummary{
			Muscle:       m,
			CurrentSets:  cur.WorkingSets,
			PreviousSets: prevSets,
			PercentOfMRV: percent,
			Status:       status,
			Trend:        trend,
		})
	}
	return out
}
