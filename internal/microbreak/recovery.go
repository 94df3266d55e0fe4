package microbreak

import "github.com/pacelab/pacer/internal/telemetry"

// MinRecoverySamples is the minimum number of response times needed on
// each side of a break to score it.
const MinRecoverySamples = 3

// Recovery scores how effective a completed break was.
type Recovery struct {
	// Score is a 0-1 band rating of the recovery.
	Score float64

	// Improvement is the relative response-time change across the
	// break. Positive means the learner got faster.
	Improvement float64

	// Recommendation is a short phrase describing the outcome.
	Recommendation string
}

// MeasureRecovery compares response times before and after a break.
// With fewer than MinRecoverySamples on either side it returns a
// neutral result rather than guessing.
func MeasureRecovery(preBreakMs, postBreakMs []int64) Recovery {
	if len(preBreakMs) < MinRecoverySamples || len(postBreakMs) < MinRecoverySamples {
		return Recovery{
			Score:          0.5,
			Improvement:    0,
			Recommendation: "Not enough data to measure recovery",
		}
	}

	preAvg := telemetry.Mean(preBreakMs)
	postAvg := telemetry.Mean(postBreakMs)
	improvement := (preAvg - postAvg) / preAvg

	var score float64
	var rec string
	switch {
	case improvement > 0.2:
		score, rec = 1.0, "Excellent recovery, break was well timed"
	case improvement > 0.1:
		score, rec = 0.8, "Good recovery"
	case improvement > 0:
		score, rec = 0.6, "Moderate recovery"
	case improvement > -0.1:
		score, rec = 0.4, "Minimal change, consider a longer break next time"
	default:
		score, rec = 0.2, "Still declining, a longer break may be needed"
	}

	return Recovery{
		Score:          score,
		Improvement:    improvement,
		Recommendation: rec,
	}
}
