package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/overloadref/overloadref/internal/telemetry/tracing"
	"github.com/overloadref/overloadref/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// HistoryParams filters the ledger query. ExerciseName empty means all
// exercises of the user; Limit <= 0 means no limit.
type HistoryParams struct {
	UserID       string
	ExerciseName string
	Limit        int
}

// Repo is the append-only ledger storage. There is deliberately no way to
// change or remove a stored entry: Update and Delete exist only to fail.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add persists a new log entry and returns the stored version. The entry id
// is assigned here, a caller-supplied one is ignored; the timestamp is kept
// when given (sets get logged after the fact) and assigned otherwise. A
// single INSERT, so an append either fully happens or not at all.
func (r *Repo) Add(ctx context.Context, entry LogEntry) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ledger.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	entry.CreatedAt = time.Now().UTC()

	span.SetAttributes(attribute.String("entry.id", entry.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO log_entry
				(id, user_id, exercise_name, timestamp, set_number, weight_used, reps_completed, duration_seconds, distance, rpe, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		entry.ID, entry.UserID, entry.ExerciseName, entry.Timestamp,
		entry.SetNumber, entry.WeightUsed, entry.RepsCompleted,
		entry.DurationSeconds, entry.Distance, entry.RPE, entry.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("entry id collision for %s: %w", entry.ID, err)
		}
		return nil, fmt.Errorf("insert log entry: %w", err)
	}

	return &entry, nil
}

// History returns the user's entries ordered by timestamp DESC (newest
// first), the order the session clustering expects. An empty result is not
// an error, it means no history.
func (r *Repo) History(ctx context.Context, params HistoryParams) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ledger.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.String("exercise_name", params.ExerciseName))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	limit := params.Limit
	if limit <= 0 {
		// "no limit"; ALL is not a bind parameter, use a null limit instead
		limit = -1
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_name, timestamp, set_number, weight_used, reps_completed, duration_seconds, distance, rpe, created_at
			FROM log_entry
				WHERE user_id = $1
				AND ($2::text = '' OR exercise_name = $2)
			ORDER BY timestamp DESC, created_at DESC
			LIMIT NULLIF($3::int, -1);`,
		params.UserID, params.ExerciseName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2entries: %w", err)
	}
	return entries, nil
}

// Update always fails: the ledger is append-only.
func (r *Repo) Update(_ context.Context, _ *LogEntry) error {
	return ErrImmutableLedger
}

// Delete always fails: the ledger is append-only.
func (r *Repo) Delete(_ context.Context, _ string) error {
	return ErrImmutableLedger
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]LogEntry, error) {
	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ExerciseName, &e.Timestamp,
			&e.SetNumber, &e.WeightUsed, &e.RepsCompleted,
			&e.DurationSeconds, &e.Distance, &e.RPE, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	// a connection dropped mid-result-set would otherwise surface as a
	// silently truncated history
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = make([]LogEntry, 0)
	}

	return entries, nil
}
