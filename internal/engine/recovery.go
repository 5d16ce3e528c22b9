package engine

import (
	"sort"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// CorrelationSignificance grades the strength of a recovery/performance
// correlation.
type CorrelationSignificance string

const (
	CorrelationStrong           CorrelationSignificance = "strong"
	CorrelationModerate         CorrelationSignificance = "moderate"
	CorrelationWeak             CorrelationSignificance = "weak"
	CorrelationInsufficientData CorrelationSignificance = "insufficient_data"
)

// minCorrelationPairs is the smallest sample considered meaningful.
const minCorrelationPairs = 8

// RecoveryCorrelationResult reports how strongly daily subjective recovery
// tracks same/next-day workout performance.
type RecoveryCorrelationResult struct {
	Correlation    float64                 `json:"correlation"`
	AvgRecovery    float64                 `json:"avg_recovery"`
	Pairs          int                     `json:"pairs"`
	Significance   CorrelationSignificance `json:"significance"`
	Interpretation string                  `json:"interpretation,omitempty"`
}

// AnalyzeRecoveryCorrelation pairs each workout session with the most recent
// check-in from the same day or the day before, then correlates recovery
// score against performance score. Fewer than eight pairs returns an
// insufficient_data sentinel with zero correlation.
func AnalyzeRecoveryCorrelation(checkins []models.CheckinRow, sessions []models.WorkoutSessionRow) RecoveryCorrelationResult {
	sorted := make([]models.CheckinRow, len(checkins))
	copy(sorted, checkins)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var recovery, performance []float64
	for _, s := range sessions {
		c, ok := latestCheckinBefore(sorted, s.CompletedAt)
		if !ok {
			continue
		}
		recovery = append(recovery, recoveryScore(c))
		performance = append(performance, performanceScore(s))
	}

	if len(recovery) < minCorrelationPairs {
		return RecoveryCorrelationResult{
			Pairs:        len(recovery),
			Significance: CorrelationInsufficientData,
		}
	}

	corr := PearsonCorrelation(recovery, performance)
	avgRecovery := Average(recovery)

	var sig CorrelationSignificance
	abs := corr
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 0.6:
		sig = CorrelationStrong
	case abs >= 0.4:
		sig = CorrelationModerate
	default:
		sig = CorrelationWeak
	}

	return RecoveryCorrelationResult{
		Correlation:    corr,
		AvgRecovery:    avgRecovery,
		Pairs:          len(recovery),
		Significance:   sig,
		Interpretation: interpretCorrelation(avgRecovery, corr, sig),
	}
}

// latestCheckinBefore returns the most recent check-in dated the same day as
// the session or the day before it.
func latestCheckinBefore(sorted []models.CheckinRow, completedAt time.Time) (models.CheckinRow, bool) {
	sessionDay := truncateToDay(completedAt)
	for i := len(sorted) - 1; i >= 0; i-- {
		checkinDay := truncateToDay(sorted[i].Date)
		daysBefore := int(sessionDay.Sub(checkinDay).Hours() / 24)
		if daysBefore >= 0 && daysBefore <= 1 {
			return sorted[i], true
		}
		if checkinDay.Before(sessionDay.AddDate(0, 0, -1)) {
			break
		}
	}
	return models.CheckinRow{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// recoveryScore averages whichever subjective factors the user answered.
// Stress is inverted (6 - stress) so that higher always means better
// recovered. No factors at all defaults to a neutral 3.
func recoveryScore(c models.CheckinRow) float64 {
	var factors []float64
	if c.SleepQuality != nil {
		factors = append(factors, *c.SleepQuality)
	}
	if c.Energy != nil {
		factors = append(factors, *c.Energy)
	}
	if c.Soreness != nil {
		factors = append(factors, *c.Soreness)
	}
	if c.Mood != nil {
		factors = append(factors, *c.Mood)
	}
	if c.Stress != nil {
		factors = append(factors, 6-*c.Stress)
	}
	if len(factors) == 0 {
		return 3
	}
	return Average(factors)
}

// performanceScore combines session completion with inverted session RPE,
// clamped to [0, 100].
func performanceScore(s models.WorkoutSessionRow) float64 {
	return clamp(s.CompletionPercent+(10-s.SessionRPE)*2, 0, 100)
}

// interpretCorrelation renders a human-readable reading of the correlation
// for the dashboard.
func interpretCorrelation(avgRecovery, corr float64, sig CorrelationSignificance) string {
	positive := corr > 0
	meaningful := sig == CorrelationStrong || sig == CorrelationModerate

	switch {
	case avgRecovery < 2.5:
		if meaningful && positive {
			return "Recovery scores are chronically low and performance clearly tracks them. Prioritize sleep and stress management before adding volume."
		}
		return "Recovery scores are chronically low. Performance has not clearly suffered yet, but this leaves little margin for added volume."
	case avgRecovery < 3.5:
		if meaningful && positive {
			return "Performance noticeably follows day-to-day recovery. On low-recovery days, expect reduced output and consider lighter sessions."
		}
		if meaningful && !positive {
			return "Performance moves opposite to reported recovery, which usually means the subjective scores are not capturing what matters. Keep logging."
		}
		return "Recovery is moderate and performance is largely independent of daily fluctuations. Current volume appears sustainable."
	default:
		if meaningful && positive {
			return "Recovery is good and performance responds to it. There may be room to push volume on well-recovered days."
		}
		return "Recovery is consistently good and performance is stable regardless of daily variation. Volume tolerance looks healthy."
	}
}
