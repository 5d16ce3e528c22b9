package models

// FormRating is the lifter's movement-quality rating for a set.
type FormRating string

const (
	FormClean         FormRating = "clean"
	FormSomeBreakdown FormRating = "some_breakdown"
	FormUgly          FormRating = "ugly"
)

// TrainingAge buckets how long a user has been training consistently.
type TrainingAge string

const (
	Novice       TrainingAge = "novice"
	Intermediate TrainingAge = "intermediate"
	Advanced     TrainingAge = "advanced"
)

// ConfidenceTier expresses how much observed data backs a tolerance estimate.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)
