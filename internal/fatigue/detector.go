package fatigue

import (
	"time"

	"github.com/pacelab/pacer/internal/telemetry"
)

// Tuning constants for the fatigue heuristics. Hoisted here so each
// signal can be tested and adjusted independently.
const (
	// TrendWindow is the number of recent samples compared against the
	// samples that preceded them.
	TrendWindow = 5

	// SlowdownRatio is the recent/older mean ratio (exclusive) above
	// which response times count as increasing.
	SlowdownRatio = 1.3

	// InconsistencyThreshold is the coefficient of variation
	// (exclusive) above which recent response times count as erratic.
	InconsistencyThreshold = 0.5

	// AccuracyDropThreshold is the minimum accuracy decline between
	// windows that counts as a fatigue signal.
	AccuracyDropThreshold = 0.2

	// Additive weights for each signal.
	SlowdownWeight      = 0.3
	InconsistencyWeight = 0.2
	AccuracyDropWeight  = 0.3
	LongStretchWeight   = 0.4
	MidStretchWeight    = 0.2

	// Break-stretch brackets. Only the higher bracket fires.
	LongStretch = 15 * time.Minute
	MidStretch  = 10 * time.Minute
)

// Result is a fatigue estimate with the signals that produced it.
type Result struct {
	// Level is the combined fatigue score, clamped to [0, 1].
	Level float64

	// Indicators are human-readable descriptions of every signal that
	// fired, in evaluation order.
	Indicators []string
}

// Detect estimates attentional fatigue from the session's rolling
// telemetry. Each signal is skipped when the window holds too little
// data, so the score degrades gracefully early in a session.
func Detect(state telemetry.SessionState, now time.Time) Result {
	var r Result

	if len(state.ResponseTimes) >= TrendWindow {
		recent := telemetry.LastN(state.ResponseTimes, TrendWindow)
		older := telemetry.PriorN(state.ResponseTimes, TrendWindow)
		if len(older) > 0 {
			recentMean := telemetry.Mean(recent)
			olderMean := telemetry.Mean(older)
			if olderMean > 0 && recentMean > olderMean*SlowdownRatio {
				r.add(SlowdownWeight, "Response times increasing")
			}
		}

		if telemetry.CoefficientOfVariation(recent) > InconsistencyThreshold {
			r.add(InconsistencyWeight, "Inconsistent response times")
		}
	}

	if len(state.Correctness) >= TrendWindow {
		recent := telemetry.LastNBools(state.Correctness, TrendWindow)
		older := telemetry.PriorNBools(state.Correctness, TrendWindow)
		if len(older) > 0 {
			drop := telemetry.Accuracy(older) - telemetry.Accuracy(recent)
			if drop >= AccuracyDropThreshold {
				r.add(AccuracyDropWeight, "Accuracy declining")
			}
		}
	}

	switch stretch := state.TimeSinceBreak(now); {
	case stretch > LongStretch:
		r.add(LongStretchWeight, "Extended time without break")
	case stretch > MidStretch:
		r.add(MidStretchWeight, "Approaching recommended break time")
	}

	if r.Level > 1 {
		r.Level = 1
	}
	return r
}

func (r *Result) add(weight float64, indicator string) {
	r.Level += weight
	r.Indicators = append(r.Indicators, indicator)
}
