package models

// MuscleGroup identifies one of the fixed anatomical groups tracked by the
// volume engine. The set is closed: every map keyed by MuscleGroup can be
// iterated via AllMuscleGroups in a stable order.
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Glutes     MuscleGroup = "glutes"
	Calves     MuscleGroup = "calves"
	Abs        MuscleGroup = "abs"
	Traps      MuscleGroup = "traps"
	Forearms   MuscleGroup = "forearms"
	Adductors  MuscleGroup = "adductors"
)

// AllMuscleGroups lists every muscle group in display order.
var AllMuscleGroups = []MuscleGroup{
	Chest, Back, Shoulders, Biceps, Triceps,
	Quads, Hamstrings, Glutes, Calves,
	Abs, Traps, Forearms, Adductors,
}

// Valid reports whether m is one of the known muscle groups.
func (m MuscleGroup) Valid() bool {
	for _, g := range AllMuscleGroups {
		if m == g {
			return true
		}
	}
	return false
}
