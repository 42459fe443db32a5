package ledger

import (
	"sort"
	"time"
)

// DefaultSessionThreshold - a gap of more than two hours between sets
// indicates a new session.
const DefaultSessionThreshold = 2 * time.Hour

// Session is a derived view over ledger entries: a maximal cluster of
// same-exercise sets whose consecutive timestamp gaps do not exceed the
// threshold. Sessions are never stored, always recomputed on read.
type Session struct {
	// Timestamp is the earliest set timestamp, i.e. the session start.
	Timestamp time.Time  `json:"timestamp"`
	Sets      []LogEntry `json:"sets"`
}

// LatestSession extracts the most recent session from entries.
//
// The input must be ordered by timestamp DESC (newest first), the order the
// repo returns. The walk stops at the first gap larger than threshold; the
// accumulated entries form the latest session, returned sorted ascending by
// set number. Entries sharing a timestamp count as zero-gap.
func LatestSession(entries []LogEntry, threshold time.Duration) (*Session, error) {
	if len(entries) == 0 {
		return nil, ErrNoSession
	}

	cluster := []LogEntry{entries[0]}
	for i := 1; i < len(entries); i++ {
		gap := entries[i-1].Timestamp.Sub(entries[i].Timestamp)
		if gap > threshold {
			// session boundary, everything older is another session
			break
		}
		cluster = append(cluster, entries[i])
	}

	return newSession(cluster), nil
}

// Sessions clusters all entries into distinct sessions, newest first.
// Used for history and analytics views; input ordered by timestamp DESC.
func Sessions(entries []LogEntry, threshold time.Duration) []Session {
	if len(entries) == 0 {
		return nil
	}

	var sessions []Session
	cluster := []LogEntry{entries[0]}
	for i := 1; i < len(entries); i++ {
		gap := entries[i-1].Timestamp.Sub(entries[i].Timestamp)
		if gap > threshold {
			sessions = append(sessions, *newSession(cluster))
			cluster = []LogEntry{entries[i]}
			continue
		}
		cluster = append(cluster, entries[i])
	}
	sessions = append(sessions, *newSession(cluster))

	return sessions
}

func newSession(cluster []LogEntry) *Session {
	// cluster walked newest to oldest, so the session started at the last entry
	start := cluster[len(cluster)-1].Timestamp

	sets := make([]LogEntry, len(cluster))
	copy(sets, cluster)
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].SetNumber < sets[j].SetNumber
	})

	return &Session{
		Timestamp: start,
		Sets:      sets,
	}
}
