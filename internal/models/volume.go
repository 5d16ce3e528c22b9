package models

// ExerciseWeekPerformance is the best set of one week for one exercise,
// with deltas against the prior week. Derived data, never persisted.
type ExerciseWeekPerformance struct {
	ExerciseName      string     `json:"exercise_name"`
	Week              int        `json:"week"`
	WeightKg          float64    `json:"weight_kg"`
	Reps              int        `json:"reps"`
	RIR               float64    `json:"rir"`
	Form              FormRating `json:"form"`
	EstimatedOneRM    float64    `json:"estimated_one_rm"`
	E1RMChangePercent float64    `json:"e1rm_change_percent"`
	RIRDrift          float64    `json:"rir_drift"`
	FormChange        float64    `json:"form_change"`
}

// MuscleVolumeData aggregates one muscle group for one week of a mesocycle.
// Invariant: EffectiveSets <= WorkingSets <= TotalSets.
type MuscleVolumeData struct {
	Muscle           MuscleGroup               `json:"muscle"`
	Mesocycle        int                       `json:"mesocycle"`
	Week             int                       `json:"week"`
	TotalSets        int                       `json:"total_sets"`
	WorkingSets      int                       `json:"working_sets"`
	EffectiveSets    int                       `json:"effective_sets"`
	TotalVolumeKg    float64                   `json:"total_volume_kg"`
	AverageRIR       float64                   `json:"average_rir"`
	AverageFormScore float64                   `json:"average_form_score"`
	Exercises        []ExerciseWeekPerformance `json:"exercises,omitempty"`
}
