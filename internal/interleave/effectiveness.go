package interleave

// Effectiveness thresholds and time adjustment.
const (
	// WorkingWellThreshold is the time-adjusted improvement above
	// which interleaving counts as clearly working.
	WorkingWellThreshold = 0.1

	// DelayCreditPerDay amplifies improvement per day of retention
	// interval. Gains that survive a delay deserve more credit.
	DelayCreditPerDay = 0.05
)

// Verdict classifies an effectiveness measurement.
type Verdict string

const (
	VerdictWorkingWell       Verdict = "working_well"
	VerdictSlightImprovement Verdict = "slight_improvement"
	VerdictNeedsAdjustment   Verdict = "needs_adjustment"
)

// Effectiveness reports whether interleaving is paying off for a
// learner, based on accuracy measured before and after a retention
// interval.
type Effectiveness struct {
	// Improvement is the raw post-minus-pre accuracy delta.
	Improvement float64

	// TimeAdjusted is the improvement scaled up by the retention
	// delay, rewarding durable gains.
	TimeAdjusted float64

	Verdict        Verdict
	Recommendation string
}

// TrackEffectiveness scores an interleaving intervention from pre/post
// accuracy and the days elapsed between measurements.
func TrackEffectiveness(preAccuracy, postAccuracy, delayDays float64) Effectiveness {
	improvement := postAccuracy - preAccuracy
	timeAdjusted := improvement * (1 + delayDays*DelayCreditPerDay)

	e := Effectiveness{
		Improvement:  improvement,
		TimeAdjusted: timeAdjusted,
	}

	switch {
	case timeAdjusted > WorkingWellThreshold:
		e.Verdict = VerdictWorkingWell
		e.Recommendation = "Interleaving is working well, keep the current mix"
	case timeAdjusted > 0:
		e.Verdict = VerdictSlightImprovement
		e.Recommendation = "Slight improvement, consider increasing the skill mix"
	default:
		e.Verdict = VerdictNeedsAdjustment
		e.Recommendation = "Needs adjustment, reduce the number of interleaved skills"
	}
	return e
}
