package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type repoMock struct {
	entries []LogEntry
	// injected per-call failures, consumed in order
	addErrs []error
}

// NewMockLedgerRepo returns an in-memory, append-only stand-in for the
// postgres repo, used in tests.
func NewMockLedgerRepo() *repoMock {
	return &repoMock{}
}

// FailNextAdds makes the following Add calls return the given errors, one
// per call, before going back to normal operation.
func (r *repoMock) FailNextAdds(errs ...error) {
	r.addErrs = append(r.addErrs, errs...)
}

func (r *repoMock) Add(_ context.Context, entry LogEntry) (*LogEntry, error) {
	if len(r.addErrs) > 0 {
		err := r.addErrs[0]
		r.addErrs = r.addErrs[1:]
		return nil, err
	}

	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	entry.CreatedAt = time.Now().UTC()

	r.entries = append(r.entries, entry)
	return &entry, nil
}

func (r *repoMock) History(_ context.Context, params HistoryParams) ([]LogEntry, error) {
	var result []LogEntry
	for _, e := range r.entries {
		if e.UserID != params.UserID {
			continue
		}
		if params.ExerciseName != "" && e.ExerciseName != params.ExerciseName {
			continue
		}
		result = append(result, e)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	if params.Limit > 0 && len(result) > params.Limit {
		result = result[:params.Limit]
	}

	return result, nil
}

func (r *repoMock) Update(_ context.Context, _ *LogEntry) error {
	return ErrImmutableLedger
}

func (r *repoMock) Delete(_ context.Context, _ string) error {
	return ErrImmutableLedger
}
