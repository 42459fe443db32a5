package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/overloadref/overloadref/internal/telemetry/tracing"
	"github.com/overloadref/overloadref/pkg"

	"go.opentelemetry.io/otel/attribute"
)

type ledgerRepo interface {
	Add(ctx context.Context, entry LogEntry) (*LogEntry, error)
	History(ctx context.Context, params HistoryParams) ([]LogEntry, error)
}

// storage failures get a couple of quick retries before surfacing
const (
	storageAttempts  = 3
	storageRetryWait = 50 * time.Millisecond
)

// SessionReference is the "what to beat" view: all sets of the most recent
// session of an exercise, ordered by set number.
type SessionReference struct {
	UserID           string     `json:"userId"`
	ExerciseName     string     `json:"exerciseName"`
	SessionTimestamp time.Time  `json:"sessionTimestamp"`
	Sets             []LogEntry `json:"sets"`
	TotalSets        int        `json:"totalSets"`
}

// BeatCheck is an optional candidate set to judge against the reference.
type BeatCheck struct {
	Weight float64
	Reps   int
}

// Progression packages the reference together with the computed next target.
type Progression struct {
	Reference     *SessionReference `json:"reference"`
	Heaviest      *LogEntry         `json:"heaviest"`
	Suggestion    *Suggestion       `json:"suggestion"`
	Volume        float64           `json:"volume"`
	BeatsPrevious *bool             `json:"beatsPrevious,omitempty"`
}

// Service is the orchestration boundary for the performance ledger: the only
// write path in, and the derived latest-session / progression reads out.
// It holds no state of its own, the ledger is the only state there is.
type Service struct {
	repo ledgerRepo
}

func NewService(repo ledgerRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// LogSet validates and appends one completed set. Transient storage faults
// are retried a bounded number of times; validation errors never are.
func (s *Service) LogSet(ctx context.Context, entry LogEntry) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ledger.logset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	var added *LogEntry
	for attempt := 1; ; attempt++ {
		added, err = s.repo.Add(ctx, entry)
		if err == nil {
			break
		}
		if attempt >= storageAttempts || !isTransient(err) {
			return nil, fmt.Errorf("add log entry: %w", err)
		}

		span.AddEvent("retrying add")
		select {
		case <-ctx.Done():
			// outcome of the pending write is unknown to the caller here,
			// it must be treated as indeterminate, never as success
			return nil, ctx.Err()
		case <-time.After(storageRetryWait * time.Duration(attempt)):
		}
	}

	span.SetAttributes(attribute.String("entry.id", added.ID))
	return added, nil
}

// LatestSessionReference queries the full exercise history and derives the
// most recent session from it. Returns ErrNoSession when the exercise was
// never logged.
func (s *Service) LatestSessionReference(
	ctx context.Context,
	userID, exerciseName string,
	threshold time.Duration,
) (_ *SessionReference, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ledger.latestsession")
	defer func() {
		if !errors.Is(err, ErrNoSession) {
			tracing.EndSpanWithErrCheck(span, err)
		} else {
			span.End()
		}
	}()
	span.SetAttributes(attribute.String("exercise_name", exerciseName))

	if threshold <= 0 {
		threshold = DefaultSessionThreshold
	}

	entries, err := s.queryHistory(ctx, HistoryParams{
		UserID:       userID,
		ExerciseName: exerciseName,
	})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	session, err := LatestSession(entries, threshold)
	if err != nil {
		return nil, err
	}

	return &SessionReference{
		UserID:           userID,
		ExerciseName:     exerciseName,
		SessionTimestamp: session.Timestamp,
		Sets:             session.Sets,
		TotalSets:        len(session.Sets),
	}, nil
}

// Progression computes the suggested next target from the latest session.
// With a non-nil beatCheck the candidate set is judged against the reference.
func (s *Service) Progression(
	ctx context.Context,
	userID, exerciseName string,
	threshold time.Duration,
	beatCheck *BeatCheck,
) (_ *Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ledger.progression")
	defer func() {
		if !errors.Is(err, ErrNoSession) {
			tracing.EndSpanWithErrCheck(span, err)
		} else {
			span.End()
		}
	}()

	reference, err := s.LatestSessionReference(ctx, userID, exerciseName, threshold)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Timestamp: reference.SessionTimestamp,
		Sets:      reference.Sets,
	}

	progression := &Progression{
		Reference:  reference,
		Heaviest:   Heaviest(session),
		Suggestion: Suggest(session),
		Volume:     Volume(session),
	}

	if beatCheck != nil {
		beats := BeatsPrevious(beatCheck.Weight, beatCheck.Reps, session)
		progression.BeatsPrevious = &beats
	}

	return progression, nil
}

// History returns raw entries, newest first, for analytics and history views.
func (s *Service) History(ctx context.Context, params HistoryParams) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ledger.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.queryHistory(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}

func (s *Service) queryHistory(ctx context.Context, params HistoryParams) ([]LogEntry, error) {
	var entries []LogEntry
	var err error
	for attempt := 1; ; attempt++ {
		entries, err = s.repo.History(ctx, params)
		if err == nil {
			return entries, nil
		}
		if attempt >= storageAttempts || !isTransient(err) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(storageRetryWait * time.Duration(attempt)):
		}
	}
}

func isTransient(err error) bool {
	return pkg.IsConnectionError(err)
}
