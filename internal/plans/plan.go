package plans

import "errors"

// ErrPlanNotFound - no plan prescribed for the user on that day.
var ErrPlanNotFound = errors.New("plan not found")

// PlannedExercise is one prescribed exercise in a daily plan, with its
// target sets/reps scheme.
type PlannedExercise struct {
	ExerciseName string  `json:"exerciseName"`
	TargetSets   int     `json:"targetSets"`
	TargetReps   int     `json:"targetReps"`
	TargetWeight float64 `json:"targetWeight,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// DailyPlan is what the plan service prescribes for a user on a given day.
// Plans are produced elsewhere; this service only reads them.
type DailyPlan struct {
	UserID    string            `json:"userId"`
	Date      string            `json:"date"`
	Name      string            `json:"name"`
	Exercises []PlannedExercise `json:"exercises"`
	RestDay   bool              `json:"restDay"`
}
