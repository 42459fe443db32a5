package ledger

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoSession signals that an exercise has no logged history yet.
	// It is an expected outcome (first time performing the exercise), not a failure.
	ErrNoSession = errors.New("no previous session")

	// ErrImmutableLedger is returned on any attempt to change or remove
	// a persisted log entry. The ledger is append-only; reaching this
	// error means a programming defect, not a user mistake.
	ErrImmutableLedger = errors.New("log entries are immutable")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LogEntry is one completed set of an exercise. Once stored, it never changes.
type LogEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	ExerciseName  string    `json:"exerciseName"`
	Timestamp     time.Time `json:"timestamp"`
	SetNumber     int       `json:"setNumber"`
	WeightUsed    float64   `json:"weightUsed"`
	RepsCompleted int       `json:"repsCompleted"`

	// optional measurements
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
	RPE             *int     `json:"rpe,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (e *LogEntry) Validate() error {
	if e.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if e.ExerciseName == "" {
		return &ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if e.SetNumber <= 0 {
		return &ValidationError{Field: "setNumber", Reason: "must be positive"}
	}
	if e.WeightUsed < 0 {
		return &ValidationError{Field: "weightUsed", Reason: "must not be negative"}
	}
	if e.RepsCompleted <= 0 {
		return &ValidationError{Field: "repsCompleted", Reason: "must be positive"}
	}
	if e.DurationSeconds != nil && *e.DurationSeconds < 0 {
		return &ValidationError{Field: "durationSeconds", Reason: "must not be negative"}
	}
	if e.Distance != nil && *e.Distance < 0 {
		return &ValidationError{Field: "distance", Reason: "must not be negative"}
	}
	if e.RPE != nil && (*e.RPE < 1 || *e.RPE > 10) {
		return &ValidationError{Field: "rpe", Reason: "must be between 1 and 10"}
	}
	return nil
}
