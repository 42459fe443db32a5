package ledger

import "fmt"

// Progressive overload parameters: below the rep ceiling the next target is
// one more rep at the same weight; at the ceiling the weight goes up by one
// plate increment and the rep target drops.
const (
	repCeiling      = 12
	weightIncrement = 2.5
	repFloor        = 8
)

type Strategy string

const (
	StrategyReps   Strategy = "reps"
	StrategyWeight Strategy = "weight"
)

// Suggestion is the computed next target intended to beat the reference session.
type Suggestion struct {
	Weight   float64  `json:"weight"`
	Reps     int      `json:"reps"`
	Strategy Strategy `json:"strategy"`
	Message  string   `json:"message"`
}

// Heaviest returns the set with the maximum weight in the session.
// When several sets share the maximum weight, the first one in the session's
// set-number-ascending order wins. The tie-break is arbitrary but has to be
// deterministic, so it is fixed here and tested directly.
func Heaviest(session *Session) *LogEntry {
	if session == nil || len(session.Sets) == 0 {
		return nil
	}

	heaviest := &session.Sets[0]
	for i := 1; i < len(session.Sets); i++ {
		if session.Sets[i].WeightUsed > heaviest.WeightUsed {
			heaviest = &session.Sets[i]
		}
	}
	return heaviest
}

// Suggest computes the next weight/rep target from the session's heaviest set.
func Suggest(session *Session) *Suggestion {
	heaviest := Heaviest(session)
	if heaviest == nil {
		return nil
	}

	w, r := heaviest.WeightUsed, heaviest.RepsCompleted
	if r < repCeiling {
		return &Suggestion{
			Weight:   w,
			Reps:     r + 1,
			Strategy: StrategyReps,
			Message:  fmt.Sprintf("aim for %d reps at %gkg (+1 rep)", r+1, w),
		}
	}

	nextReps := r - 2
	if nextReps < repFloor {
		nextReps = repFloor
	}
	return &Suggestion{
		Weight:   w + weightIncrement,
		Reps:     nextReps,
		Strategy: StrategyWeight,
		Message:  fmt.Sprintf("move up to %gkg and aim for %d reps (+%gkg)", w+weightIncrement, nextReps, weightIncrement),
	}
}

// BeatsPrevious reports whether the given weight/reps pair beats the
// session's heaviest set: strictly more weight, or the same weight for
// strictly more reps.
func BeatsPrevious(weight float64, reps int, session *Session) bool {
	heaviest := Heaviest(session)
	if heaviest == nil {
		return false
	}
	if weight > heaviest.WeightUsed {
		return true
	}
	return weight == heaviest.WeightUsed && reps > heaviest.RepsCompleted
}

// Volume is the total work done in the session: sum of weight * reps over all sets.
func Volume(session *Session) float64 {
	if session == nil {
		return 0
	}
	var volume float64
	for _, set := range session.Sets {
		volume += set.WeightUsed * float64(set.RepsCompleted)
	}
	return volume
}
