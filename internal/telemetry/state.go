package telemetry

import "time"

// WindowCap is the maximum number of samples retained in the rolling
// response-time and correctness windows. Both windows share the cap so
// they stay index-aligned.
const WindowCap = 20

// SessionState is a snapshot of one learner's session telemetry.
//
// The scheduler treats it as immutable: every update function returns a
// new value and leaves the receiver untouched, so callers can hand out
// snapshots across goroutines freely. Durability is the caller's
// problem — nothing here persists itself.
type SessionState struct {
	// SessionStart is when the session began.
	SessionStart time.Time

	// LastBreak is when the most recent break ended.
	// Zero value means no break has been taken yet.
	LastBreak time.Time

	// BreaksTaken counts completed breaks this session.
	BreaksTaken int

	// BreaksSkipped counts declined break recommendations.
	BreaksSkipped int

	// ResponseTimes holds the most recent answer latencies in
	// milliseconds, oldest first, capped at WindowCap.
	ResponseTimes []int64

	// Correctness holds the matching correctness flags for
	// ResponseTimes. Always the same length.
	Correctness []bool

	// CognitiveLoad is a 0.0-1.0 proxy for how demanding the current
	// material is. Supplied by the caller, used to bias break types.
	CognitiveLoad float64
}

// NewSessionState creates a fresh state for a session starting at start.
func NewSessionState(start time.Time) SessionState {
	return SessionState{SessionStart: start}
}

// RecordAnswer returns a copy of the state with one answer appended to
// both rolling windows, evicting the oldest samples past WindowCap.
func (s SessionState) RecordAnswer(responseTimeMs int64, correct bool) SessionState {
	next := s.clone()
	next.ResponseTimes = append(next.ResponseTimes, responseTimeMs)
	next.Correctness = append(next.Correctness, correct)
	if len(next.ResponseTimes) > WindowCap {
		next.ResponseTimes = next.ResponseTimes[len(next.ResponseTimes)-WindowCap:]
		next.Correctness = next.Correctness[len(next.Correctness)-WindowCap:]
	}
	return next
}

// RecordBreak returns a copy of the state reflecting a break that ended
// at endedAt. A skipped break only bumps the skip counter; "cancelling"
// a break is simply never calling this with completed=true.
func (s SessionState) RecordBreak(endedAt time.Time, completed bool) SessionState {
	next := s.clone()
	if completed {
		next.LastBreak = endedAt
		next.BreaksTaken++
	} else {
		next.BreaksSkipped++
	}
	return next
}

// WithCognitiveLoad returns a copy with the cognitive load replaced,
// clamped to [0, 1].
func (s SessionState) WithCognitiveLoad(load float64) SessionState {
	next := s.clone()
	if load < 0 {
		load = 0
	}
	if load > 1 {
		load = 1
	}
	next.CognitiveLoad = load
	return next
}

// TimeSinceBreak returns the elapsed time since the last completed
// break, or since session start if no break has been taken.
func (s SessionState) TimeSinceBreak(now time.Time) time.Duration {
	anchor := s.SessionStart
	if !s.LastBreak.IsZero() {
		anchor = s.LastBreak
	}
	return now.Sub(anchor)
}

// SessionDuration returns the total elapsed session time.
func (s SessionState) SessionDuration(now time.Time) time.Duration {
	return now.Sub(s.SessionStart)
}

// clone deep-copies the state so window appends never alias the
// original backing arrays.
func (s SessionState) clone() SessionState {
	next := s
	next.ResponseTimes = append([]int64(nil), s.ResponseTimes...)
	next.Correctness = append([]bool(nil), s.Correctness...)
	return next
}
