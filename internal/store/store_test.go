package store

import (
	"context"
	"testing"
	"time"

	"github.com/pacelab/pacer/internal/telemetry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only verified with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", SkillID: "fractions", Correct: true, TimeMs: 8000}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendBreakEvent(ctx, BreakEventData{SessionID: "s1", BreakType: "breathing", Urgency: "recommended", Completed: true}); err != nil {
		t.Fatalf("append break: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "ended"}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	answer, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer: %v", err)
	}
	brk, err := s.Client().BreakEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query break: %v", err)
	}
	sess, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session: %v", err)
	}

	if answer.Sequence != 1 || brk.Sequence != 2 || sess.Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d, want 1, 2, 3",
			answer.Sequence, brk.Sequence, sess.Sequence)
	}
}

func TestSkillAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	// No attempts yet.
	acc, err := repo.SkillAccuracy(ctx, "fractions")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0 with no attempts", acc)
	}

	answers := []bool{true, true, false, true}
	for _, correct := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1",
			SkillID:   "fractions",
			Correct:   correct,
			TimeMs:    9000,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	// A different skill must not affect the aggregate.
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", SkillID: "decimals", Correct: false, TimeMs: 9000})
	if err != nil {
		t.Fatalf("append other skill: %v", err)
	}

	acc, err = repo.SkillAccuracy(ctx, "fractions")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	count, err := repo.AttemptCount(ctx, "fractions")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if count != 4 {
		t.Errorf("attempt count = %d, want 4", count)
	}
}

func TestLastRetrievalTest(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	last, err := repo.LastRetrievalTest(ctx, "fractions")
	if err != nil {
		t.Fatalf("last retrieval (empty): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("expected zero time with no retrieval tests, got %v", last)
	}

	// A plain answer does not count as a retrieval test.
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", SkillID: "fractions", Correct: true, TimeMs: 5000})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
	last, err = repo.LastRetrievalTest(ctx, "fractions")
	if err != nil {
		t.Fatalf("last retrieval: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("expected zero time when only plain answers exist, got %v", last)
	}

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1",
		SkillID:   "fractions",
		Retrieval: true,
		Correct:   true,
		TimeMs:    7000,
	})
	if err != nil {
		t.Fatalf("append retrieval: %v", err)
	}
	last, err = repo.LastRetrievalTest(ctx, "fractions")
	if err != nil {
		t.Fatalf("last retrieval: %v", err)
	}
	if last.IsZero() {
		t.Error("expected non-zero time after a retrieval test")
	}
}

func TestRecentVariations(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	types := []string{"context", "format", "", "numerical", "phrasing"}
	for _, vt := range types {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "s1",
			SkillID:       "fractions",
			VariationType: vt,
			Correct:       true,
			TimeMs:        6000,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentVariations(ctx, "fractions", 3)
	if err != nil {
		t.Fatalf("recent variations: %v", err)
	}

	// Newest first, empty variation types skipped.
	want := []string{"phrasing", "numerical", "format"}
	if len(got) != len(want) {
		t.Fatalf("got %d variations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variation[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSkillStatsAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", SkillID: "fractions", Correct: true, TimeMs: 8000},
		{SessionID: "s1", SkillID: "fractions", Correct: false, TimeMs: 12000},
		{SessionID: "s1", SkillID: "fractions", Retrieval: true, Correct: true, TimeMs: 7000, RetrievalStrength: 0.9},
		{SessionID: "s1", SkillID: "fractions", Retrieval: true, Correct: false, TimeMs: 15000, RetrievalStrength: 0.3},
	}
	for i, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.SkillStats(ctx, "fractions")
	if err != nil {
		t.Fatalf("skill stats: %v", err)
	}

	if stats.Attempts != 4 {
		t.Errorf("attempts = %d, want 4", stats.Attempts)
	}
	if stats.Correct != 2 {
		t.Errorf("correct = %d, want 2", stats.Correct)
	}
	if stats.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.Accuracy)
	}
	if stats.RetrievalTests != 2 {
		t.Errorf("retrieval tests = %d, want 2", stats.RetrievalTests)
	}
	if got, want := stats.AvgStrength, 0.6; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("avg strength = %v, want %v", got, want)
	}
	if stats.LastAnswered.IsZero() {
		t.Error("expected non-zero last answered time")
	}
}

func TestBreakStatsAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	events := []BreakEventData{
		{SessionID: "s1", BreakType: "breathing", Completed: true, RecoveryScore: 0.8},
		{SessionID: "s1", BreakType: "breathing", Completed: true, RecoveryScore: 0.4},
		{SessionID: "s1", BreakType: "movement", Completed: true},
		{SessionID: "s1", BreakType: "mindfulness", Completed: false},
	}
	for i, e := range events {
		if err := repo.AppendBreakEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.BreakStats(ctx)
	if err != nil {
		t.Fatalf("break stats: %v", err)
	}

	if stats.Taken != 3 {
		t.Errorf("taken = %d, want 3", stats.Taken)
	}
	if stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.Skipped)
	}
	if stats.ByType["breathing"] != 2 {
		t.Errorf("breathing count = %d, want 2", stats.ByType["breathing"])
	}
	if stats.MeasuredBreaks != 2 {
		t.Errorf("measured breaks = %d, want 2", stats.MeasuredBreaks)
	}
	if got, want := stats.AvgRecovery, 0.6; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("avg recovery = %v, want %v", got, want)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Session: &SessionStateData{
				SessionID:     "s1",
				SessionStart:  now.Format(time.RFC3339),
				ResponseTimes: []int64{8000, 9000},
				Correctness:   []bool{true, false},
				CognitiveLoad: 0.4,
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Session == nil {
		t.Fatal("expected session state in snapshot data")
	}
	if snap.Data.Session.SessionID != "s1" {
		t.Errorf("session id = %q, want \"s1\"", snap.Data.Session.SessionID)
	}
	if len(snap.Data.Session.ResponseTimes) != 2 {
		t.Errorf("response times = %v, want 2 entries", snap.Data.Session.ResponseTimes)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSessionStateRoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	state := telemetry.SessionState{
		SessionStart:  start,
		LastBreak:     start.Add(12 * time.Minute),
		BreaksTaken:   2,
		BreaksSkipped: 1,
		ResponseTimes: []int64{8000, 9500, 11000},
		Correctness:   []bool{true, true, false},
		CognitiveLoad: 0.6,
	}

	data := EncodeSessionState("s1", state)
	if data.SessionID != "s1" {
		t.Errorf("session id = %q, want \"s1\"", data.SessionID)
	}

	got, err := DecodeSessionState(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !got.SessionStart.Equal(state.SessionStart) {
		t.Errorf("session start = %v, want %v", got.SessionStart, state.SessionStart)
	}
	if !got.LastBreak.Equal(state.LastBreak) {
		t.Errorf("last break = %v, want %v", got.LastBreak, state.LastBreak)
	}
	if got.BreaksTaken != 2 || got.BreaksSkipped != 1 {
		t.Errorf("breaks = %d/%d, want 2/1", got.BreaksTaken, got.BreaksSkipped)
	}
	if len(got.ResponseTimes) != 3 || got.ResponseTimes[2] != 11000 {
		t.Errorf("response times = %v", got.ResponseTimes)
	}
	if got.CognitiveLoad != 0.6 {
		t.Errorf("cognitive load = %v, want 0.6", got.CognitiveLoad)
	}
}

func TestSessionStateRoundTripNeverBroke(t *testing.T) {
	state := telemetry.SessionState{
		SessionStart: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	data := EncodeSessionState("s1", state)
	if data.LastBreak != "" {
		t.Errorf("last break = %q, want empty for zero time", data.LastBreak)
	}

	got, err := DecodeSessionState(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.LastBreak.IsZero() {
		t.Errorf("last break = %v, want zero time", got.LastBreak)
	}
}
