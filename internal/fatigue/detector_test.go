package fatigue

import (
	"testing"
	"time"

	"github.com/pacelab/pacer/internal/telemetry"
)

var sessionStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// stateWithTimes builds a session state with the given response times
// and matching all-correct answers.
func stateWithTimes(times ...int64) telemetry.SessionState {
	s := telemetry.NewSessionState(sessionStart)
	for _, ms := range times {
		s = s.RecordAnswer(ms, true)
	}
	return s
}

func TestDetect_FreshSessionHasNoFatigue(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	r := Detect(s, sessionStart.Add(2*time.Minute))
	if r.Level != 0 {
		t.Errorf("fresh session level = %f, want 0", r.Level)
	}
	if len(r.Indicators) != 0 {
		t.Errorf("unexpected indicators: %v", r.Indicators)
	}
}

func TestDetect_SlowdownTrend(t *testing.T) {
	// Older window averages 2000ms, recent window 4000ms: ratio 2.0.
	s := stateWithTimes(2000, 2000, 2000, 2000, 2000, 4000, 4000, 4000, 4000, 4000)
	r := Detect(s, sessionStart.Add(time.Minute))
	if r.Level != SlowdownWeight {
		t.Errorf("level = %f, want %f", r.Level, SlowdownWeight)
	}
	if len(r.Indicators) != 1 || r.Indicators[0] != "Response times increasing" {
		t.Errorf("indicators = %v", r.Indicators)
	}
}

func TestDetect_SlowdownBelowRatioDoesNotFire(t *testing.T) {
	// Ratio 1.2 is under the 1.3 threshold.
	s := stateWithTimes(2000, 2000, 2000, 2000, 2000, 2400, 2400, 2400, 2400, 2400)
	r := Detect(s, sessionStart.Add(time.Minute))
	if r.Level != 0 {
		t.Errorf("level = %f, want 0", r.Level)
	}
}

func TestDetect_InconsistentTimes(t *testing.T) {
	// Recent five swing between 1s and 9s: CV well over 0.5.
	s := stateWithTimes(1000, 9000, 1000, 9000, 1000)
	r := Detect(s, sessionStart.Add(time.Minute))
	if r.Level != InconsistencyWeight {
		t.Errorf("level = %f, want %f", r.Level, InconsistencyWeight)
	}
}

func TestDetect_AccuracyDecline(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	// First five all correct, next five two correct: drop of 0.6.
	outcomes := []bool{true, true, true, true, true, false, true, false, false, true}
	for _, ok := range outcomes {
		s = s.RecordAnswer(3000, ok)
	}
	r := Detect(s, sessionStart.Add(time.Minute))

	found := false
	for _, ind := range r.Indicators {
		if ind == "Accuracy declining" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected accuracy indicator, got %v", r.Indicators)
	}
}

func TestDetect_BreakStretchBrackets(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{5 * time.Minute, 0},
		{12 * time.Minute, MidStretchWeight},
		{16 * time.Minute, LongStretchWeight},
	}
	for _, tt := range tests {
		r := Detect(s, sessionStart.Add(tt.elapsed))
		if r.Level != tt.want {
			t.Errorf("Detect at %v: level = %f, want %f", tt.elapsed, r.Level, tt.want)
		}
	}
}

func TestDetect_OnlyHigherBracketFires(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	r := Detect(s, sessionStart.Add(20*time.Minute))
	if len(r.Indicators) != 1 {
		t.Errorf("expected a single stretch indicator, got %v", r.Indicators)
	}
}

func TestDetect_MonotonicInTimeSinceBreak(t *testing.T) {
	s := stateWithTimes(1000, 9000, 1000, 9000, 1000)
	prev := -1.0
	for _, elapsed := range []time.Duration{
		time.Minute, 5 * time.Minute, 11 * time.Minute, 14 * time.Minute,
		16 * time.Minute, 30 * time.Minute,
	} {
		r := Detect(s, sessionStart.Add(elapsed))
		if r.Level < prev {
			t.Errorf("level decreased at %v: %f < %f", elapsed, r.Level, prev)
		}
		prev = r.Level
	}
}

func TestDetect_ClampsToOne(t *testing.T) {
	s := telemetry.NewSessionState(sessionStart)
	// Slowing, erratic, and declining accuracy all at once.
	times := []int64{2000, 2100, 2000, 2050, 2000, 9000, 1000, 9500, 1000, 9000}
	outcomes := []bool{true, true, true, true, true, false, false, false, true, false}
	for i := range times {
		s = s.RecordAnswer(times[i], outcomes[i])
	}
	r := Detect(s, sessionStart.Add(25*time.Minute))
	if r.Level > 1 {
		t.Errorf("level = %f, want <= 1", r.Level)
	}
	if r.Level != 1 {
		t.Errorf("level = %f, want clamped to 1", r.Level)
	}
}
