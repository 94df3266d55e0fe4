package telemetry

import (
	"testing"
	"time"
)

func TestRecordAnswer_KeepsWindowsAligned(t *testing.T) {
	s := NewSessionState(time.Now())
	for i := range 30 {
		s = s.RecordAnswer(int64(1000+i), i%2 == 0)
		if len(s.ResponseTimes) != len(s.Correctness) {
			t.Fatalf("windows diverged after %d answers: %d vs %d",
				i+1, len(s.ResponseTimes), len(s.Correctness))
		}
	}
	if len(s.ResponseTimes) != WindowCap {
		t.Errorf("window length = %d, want cap %d", len(s.ResponseTimes), WindowCap)
	}
}

func TestRecordAnswer_EvictsOldestFirst(t *testing.T) {
	s := NewSessionState(time.Now())
	for i := range WindowCap + 5 {
		s = s.RecordAnswer(int64(i), true)
	}
	if s.ResponseTimes[0] != 5 {
		t.Errorf("oldest retained sample = %d, want 5", s.ResponseTimes[0])
	}
	if s.ResponseTimes[len(s.ResponseTimes)-1] != WindowCap+4 {
		t.Errorf("newest sample = %d, want %d", s.ResponseTimes[len(s.ResponseTimes)-1], WindowCap+4)
	}
}

func TestRecordAnswer_DoesNotMutateOriginal(t *testing.T) {
	s := NewSessionState(time.Now())
	s = s.RecordAnswer(100, true)

	updated := s.RecordAnswer(200, false)
	if len(s.ResponseTimes) != 1 {
		t.Errorf("original state mutated: %d samples", len(s.ResponseTimes))
	}
	if len(updated.ResponseTimes) != 2 {
		t.Errorf("updated state has %d samples, want 2", len(updated.ResponseTimes))
	}
}

func TestRecordBreak(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewSessionState(start)

	endedAt := start.Add(12 * time.Minute)
	s = s.RecordBreak(endedAt, true)
	if s.BreaksTaken != 1 || s.BreaksSkipped != 0 {
		t.Errorf("taken=%d skipped=%d, want 1/0", s.BreaksTaken, s.BreaksSkipped)
	}
	if !s.LastBreak.Equal(endedAt) {
		t.Errorf("LastBreak = %v, want %v", s.LastBreak, endedAt)
	}

	s = s.RecordBreak(endedAt.Add(time.Minute), false)
	if s.BreaksTaken != 1 || s.BreaksSkipped != 1 {
		t.Errorf("taken=%d skipped=%d, want 1/1", s.BreaksTaken, s.BreaksSkipped)
	}
	if !s.LastBreak.Equal(endedAt) {
		t.Error("skipped break should not move LastBreak")
	}
}

func TestTimeSinceBreak_FallsBackToSessionStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewSessionState(start)
	now := start.Add(7 * time.Minute)

	if got := s.TimeSinceBreak(now); got != 7*time.Minute {
		t.Errorf("TimeSinceBreak = %v, want 7m", got)
	}

	s = s.RecordBreak(start.Add(5*time.Minute), true)
	if got := s.TimeSinceBreak(now); got != 2*time.Minute {
		t.Errorf("TimeSinceBreak after break = %v, want 2m", got)
	}
}

func TestWithCognitiveLoad_Clamps(t *testing.T) {
	s := NewSessionState(time.Now())
	if got := s.WithCognitiveLoad(1.5).CognitiveLoad; got != 1 {
		t.Errorf("load = %f, want 1", got)
	}
	if got := s.WithCognitiveLoad(-0.2).CognitiveLoad; got != 0 {
		t.Errorf("load = %f, want 0", got)
	}
}
