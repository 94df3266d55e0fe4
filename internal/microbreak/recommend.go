package microbreak

import (
	"strings"
	"time"

	"github.com/pacelab/pacer/internal/fatigue"
	"github.com/pacelab/pacer/internal/telemetry"
)

// BreakType names a restorative activity.
type BreakType string

const (
	BreakBreathing   BreakType = "breathing"
	BreakMovement    BreakType = "movement"
	BreakMindfulness BreakType = "mindfulness"
	BreakGazeShift   BreakType = "gaze_shift"
)

// Urgency orders how strongly a break is advised. Higher values are
// more urgent.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencySuggested
	UrgencyRecommended
	UrgencyStronglyRecommended
)

// String returns the wire/display form of an urgency level.
func (u Urgency) String() string {
	switch u {
	case UrgencySuggested:
		return "suggested"
	case UrgencyRecommended:
		return "recommended"
	case UrgencyStronglyRecommended:
		return "strongly_recommended"
	default:
		return "none"
	}
}

// Recommendation is the scheduler's break advice at one point in time.
// It is recomputed on demand and never stored.
type Recommendation struct {
	ShouldBreak bool
	Urgency     Urgency

	// Reason joins the fatigue indicators that drove the decision.
	Reason string

	// BreakType is the suggested activity. Meaningful only when
	// ShouldBreak is true.
	BreakType BreakType

	// Duration is the suggested break length, fatigue-scaled.
	Duration time.Duration

	// NextCheck is how long the caller should wait before asking
	// again.
	NextCheck time.Duration

	// FatigueLevel is the score that informed the recommendation,
	// surfaced for telemetry.
	FatigueLevel float64
}

// defaultReason is used when a break is due on elapsed time alone and
// no fatigue indicator fired.
const defaultReason = "Regular breaks help maintain focus"

// Recommend evaluates the session state and returns break advice.
//
// Inside the minimum focus window it returns a no-break result whose
// NextCheck is the time remaining until a break first becomes possible.
// Past the window, urgency escalates with elapsed time and the fatigue
// score from the detector.
func Recommend(state telemetry.SessionState, cfg Config, now time.Time) Recommendation {
	sinceBreak := state.TimeSinceBreak(now)

	if sinceBreak < cfg.MinSessionDuration {
		return Recommendation{
			Urgency:   UrgencyNone,
			NextCheck: cfg.MinSessionDuration - sinceBreak,
		}
	}

	f := fatigue.Detect(state, now)

	var urgency Urgency
	switch {
	case sinceBreak >= cfg.MaxSessionDuration || f.Level >= StrongFatigueThreshold:
		urgency = UrgencyStronglyRecommended
	case sinceBreak >= cfg.MinSessionDuration || f.Level >= ModerateFatigueThreshold:
		urgency = UrgencyRecommended
	case f.Level >= SuggestedFatigueThreshold:
		urgency = UrgencySuggested
	default:
		urgency = UrgencyNone
	}

	reason := defaultReason
	if len(f.Indicators) > 0 {
		reason = strings.Join(f.Indicators, "; ")
	}

	nextCheck := ActiveCheckInterval
	if urgency == UrgencyNone {
		nextCheck = IdleCheckInterval
	}

	return Recommendation{
		ShouldBreak:  urgency > UrgencyNone,
		Urgency:      urgency,
		Reason:       reason,
		BreakType:    selectBreakType(state, cfg, now),
		Duration:     scaledDuration(cfg, f.Level),
		NextCheck:    nextCheck,
		FatigueLevel: f.Level,
	}
}

// selectBreakType picks the restorative activity. Rules are evaluated
// in priority order; a rule whose type is disabled falls through to the
// next. With nothing enabled the hard-coded fallback is breathing.
func selectBreakType(state telemetry.SessionState, cfg Config, now time.Time) BreakType {
	if cfg.AdaptToCognitiveLoad && state.CognitiveLoad > HighLoadThreshold {
		if cfg.EnableBreathing {
			return BreakBreathing
		}
		if cfg.EnableMindfulness {
			return BreakMindfulness
		}
	}

	if state.SessionDuration(now) > LongSessionThreshold && cfg.EnableMovement {
		return BreakMovement
	}

	// A full response-time window means sustained screen focus.
	if len(state.ResponseTimes) >= telemetry.WindowCap && cfg.EnableGazeShift {
		return BreakGazeShift
	}

	types := cfg.enabledTypes()
	if len(types) == 0 {
		return BreakBreathing
	}
	return types[state.BreaksTaken%len(types)]
}

// scaledDuration stretches the base break by the fatigue level, capped
// at MaxBreakDuration.
func scaledDuration(cfg Config, fatigueLevel float64) time.Duration {
	d := time.Duration(float64(cfg.BreakDuration) * (1 + fatigueLevel*FatigueDurationScale))
	if d > MaxBreakDuration {
		d = MaxBreakDuration
	}
	return d
}
