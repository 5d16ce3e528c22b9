package engine

import (
	"fmt"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// AlertType identifies what triggered a fatigue alert.
type AlertType string

const (
	AlertApproachingMRV  AlertType = "approaching_mrv"
	AlertRIRDrift        AlertType = "rir_drift"
	AlertFormDegradation AlertType = "form_degradation"
)

// AlertSeverity orders alerts for display. "alert" outranks "warning".
type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityAlert   AlertSeverity = "alert"
)

// FatigueAlert is a transient mid-block warning. Display only, never
// persisted.
type FatigueAlert struct {
	Muscle          models.MuscleGroup `json:"muscle"`
	Type            AlertType          `json:"type"`
	Severity        AlertSeverity      `json:"severity"`
	Message         string             `json:"message"`
	SuggestedAction string             `json:"suggested_action"`
}

// mrvProximityRatio is the fraction of estimated MRV at which the
// approaching_mrv warning fires.
const mrvProximityRatio = 0.9

// formDegradationAlertThreshold is the average form-score drop that
// triggers a form warning on the trailing window.
const formDegradationAlertThreshold = 0.25

// MonitorFatigue checks the trailing weeks of each muscle against the
// learned profile and emits alerts for muscles showing overreach signals.
// Muscles with fewer than two recent weeks are skipped. A muscle can emit
// several alerts in the same pass.
func MonitorFatigue(recent map[models.MuscleGroup][]models.MuscleVolumeData, profile models.UserVolumeProfile) []FatigueAlert {
	var alerts []FatigueAlert

	for _, m := range models.AllMuscleGroups {
		weeks := recent[m]
		if len(weeks) < 2 {
			continue
		}

		tol := profile.Tolerances[m]
		currentSets := weeks[len(weeks)-1].WorkingSets

		if tol.EstimatedMRV > 0 && float64(currentSets) >= mrvProximityRatio*float64(tol.EstimatedMRV) {
			alerts = append(alerts, FatigueAlert{
				Muscle:   m,
				Type:     AlertApproachingMRV,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s is at %d of an estimated %d weekly sets, close to your recoverable limit.",
					m, currentSets, tol.EstimatedMRV),
				SuggestedAction: "Hold volume here; add load or reps instead of sets this week.",
			})
		}

		drift := CalculateRIRDrift(weeks)
		switch drift.Significance {
		case DriftConcerning:
			alerts = append(alerts, FatigueAlert{
				Muscle:   m,
				Type:     AlertRIRDrift,
				Severity: SeverityAlert,
				Message: fmt.Sprintf("%s sets feel %.1f RIR harder than at the start of the block.",
					m, drift.Drift),
				SuggestedAction: "Fatigue is accumulating fast. Consider starting the deload early.",
			})
		case DriftElevated:
			alerts = append(alerts, FatigueAlert{
				Muscle:   m,
				Type:     AlertRIRDrift,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s effort is creeping up (%.1f RIR drift over recent weeks).",
					m, drift.Drift),
				SuggestedAction: "Watch this muscle; avoid adding sets until effort stabilizes.",
			})
		case DriftNormal:
		}

		form := AnalyzeFormTrend(weeks)
		if form.AvgDegradation > formDegradationAlertThreshold {
			alerts = append(alerts, FatigueAlert{
				Muscle:   m,
				Type:     AlertFormDegradation,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s movement quality has dropped %.2f points over recent weeks.",
					m, form.AvgDegradation),
				SuggestedAction: "Reduce load 5-10% and re-groove technique before progressing.",
			})
		}
	}

	return alerts
}
