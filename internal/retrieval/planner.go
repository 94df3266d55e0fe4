package retrieval

import "time"

// Thresholds for the retrieval-versus-restudy decision.
const (
	// MinAttempts is the number of exposures a skill needs before
	// retrieval practice is worth attempting.
	MinAttempts = 2

	// OptimalMasteryLow and OptimalMasteryHigh bound the mastery range
	// where retrieval practice pays off most.
	OptimalMasteryLow  = 0.4
	OptimalMasteryHigh = 0.8

	// OptimalSpacingDays is the minimum gap before re-testing a skill
	// in the optimal range.
	OptimalSpacingDays = 1.0

	// HighMasterySpacingDays is the gap enforced for well-mastered
	// skills before another retrieval test.
	HighMasterySpacingDays = 3.0
)

// Decision says whether the next interaction should be a pure-recall
// prompt rather than restudy, and why.
type Decision struct {
	UseRetrieval bool
	Reason       string
}

// Decide applies the retrieval decision table in order. lastTest is the
// time of the most recent retrieval test; its zero value means the
// skill has never been tested.
func Decide(currentMastery float64, lastTest time.Time, attemptCount int, now time.Time) Decision {
	if attemptCount < MinAttempts {
		return Decision{false, "initial learning phase, focus on encoding first"}
	}
	if lastTest.IsZero() {
		return Decision{true, "retrieval not yet attempted for this skill"}
	}

	daysSince := now.Sub(lastTest).Hours() / 24.0

	if currentMastery >= OptimalMasteryLow && currentMastery <= OptimalMasteryHigh &&
		daysSince > OptimalSpacingDays {
		return Decision{true, "optimal mastery range for retrieval practice"}
	}
	if currentMastery > OptimalMasteryHigh && daysSince < HighMasterySpacingDays {
		return Decision{false, "spacing before next retrieval test"}
	}
	return Decision{true, "regular retrieval maintains retention"}
}
