// Package mastery estimates how well a skill is known from observed
// answers. Estimates feed back into scheduling, so a skill that keeps
// getting answered quickly and correctly receives less session time.
package mastery

// SpeedWindow is the rolling window size for speed scores.
const SpeedWindow = 10

// StreakCap is the streak length that counts as full consistency.
const StreakCap = 8

// estimateSmoothing controls how fast the estimate moves off the
// prior. After estimateSmoothing observations, prior and observed
// fluency carry equal weight.
const estimateSmoothing = 5.0

// Tracker accumulates answer observations for one skill.
type Tracker struct {
	speedScores []float64
	streak      int
	attempts    int
	correct     int
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records one answer. targetMs is the expected response time
// for the skill at the learner's level; faster than half the target
// scores full speed credit.
func (t *Tracker) Observe(correct bool, responseTimeMs, targetMs int64) {
	t.attempts++
	if correct {
		t.correct++
		t.streak++
	} else {
		t.streak = 0
	}

	t.speedScores = append(t.speedScores, SpeedScore(responseTimeMs, targetMs))
	if len(t.speedScores) > SpeedWindow {
		t.speedScores = t.speedScores[len(t.speedScores)-SpeedWindow:]
	}
}

// Attempts returns the number of observations so far.
func (t *Tracker) Attempts() int {
	return t.attempts
}

// Accuracy returns the observed accuracy ratio.
func (t *Tracker) Accuracy() float64 {
	if t.attempts == 0 {
		return 0.0
	}
	return float64(t.correct) / float64(t.attempts)
}

// Fluency blends accuracy, speed, and streak consistency into one
// score in [0, 1]. Accuracy dominates.
func (t *Tracker) Fluency() float64 {
	score := 0.6*clamp(t.Accuracy(), 0, 1) +
		0.2*clamp(t.averageSpeed(), 0, 1) +
		0.2*ConsistencyScore(t.streak, StreakCap)
	return clamp(score, 0, 1)
}

// Estimate blends the prior mastery estimate with observed fluency,
// weighted by how much evidence the tracker holds. With no
// observations the prior passes through unchanged.
func (t *Tracker) Estimate(prior float64) float64 {
	if t.attempts == 0 {
		return clamp(prior, 0, 1)
	}
	w := float64(t.attempts) / (float64(t.attempts) + estimateSmoothing)
	return clamp(prior*(1-w)+t.Fluency()*w, 0, 1)
}

// SpeedScore maps a response time against a target time. At or under
// half the target scores 1.0, at the target 0.5, and the score decays
// to zero by twice the target.
func SpeedScore(responseTimeMs, targetMs int64) float64 {
	if targetMs <= 0 {
		return 0.5
	}

	ratio := float64(responseTimeMs) / float64(targetMs)
	switch {
	case ratio <= 0.5:
		return 1.0
	case ratio <= 1.0:
		return 1.0 - (ratio - 0.5)
	default:
		return max(0.0, 0.5-0.5*(ratio-1.0))
	}
}

// ConsistencyScore maps a correct-answer streak onto [0, 1].
func ConsistencyScore(streak, cap int) float64 {
	if cap <= 0 {
		return 0.0
	}
	if streak >= cap {
		return 1.0
	}
	return float64(streak) / float64(cap)
}

func (t *Tracker) averageSpeed() float64 {
	if len(t.speedScores) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, s := range t.speedScores {
		sum += s
	}
	return sum / float64(len(t.speedScores))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
