package app

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pacelab/pacer/internal/config"
	"github.com/pacelab/pacer/internal/content"
	"github.com/pacelab/pacer/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRunner(t *testing.T, s *store.Store, provider content.Provider, seed uint64) *Runner {
	t.Helper()
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return New(Options{
		Events:    events,
		Snapshots: s.SnapshotRepo(),
		Provider:  provider,
		Config:    config.Default(),
		Seed:      seed,
		Start:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	})
}

func TestSimulateServesFullSession(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 7)
	ctx := context.Background()

	summary, err := r.Simulate(ctx)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	want := config.Default().Session.TotalQuestions
	if summary.Questions != want {
		t.Errorf("questions = %d, want %d", summary.Questions, want)
	}
	if summary.Correct > summary.Questions {
		t.Errorf("correct = %d exceeds questions", summary.Correct)
	}
	if summary.Variations+summary.RetrievalTests != summary.Questions {
		t.Errorf("variations %d + retrieval %d != questions %d",
			summary.Variations, summary.RetrievalTests, summary.Questions)
	}
	if len(summary.Transcript) != summary.Questions {
		t.Errorf("transcript has %d entries, want %d", len(summary.Transcript), summary.Questions)
	}
	if summary.Duration <= 0 {
		t.Error("expected positive session duration")
	}
}

func TestSimulateAppendsEvents(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 11)
	ctx := context.Background()

	summary, err := r.Simulate(ctx)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	answers, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if answers != summary.Questions {
		t.Errorf("answer events = %d, want %d", answers, summary.Questions)
	}

	sessions, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 2 {
		t.Errorf("session events = %d, want 2 (started + ended)", sessions)
	}

	breaks, err := s.Client().BreakEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count breaks: %v", err)
	}
	if breaks != summary.BreaksTaken {
		t.Errorf("break events = %d, want %d", breaks, summary.BreaksTaken)
	}
}

func TestSimulateSavesSnapshot(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 3)
	ctx := context.Background()

	if _, err := r.Simulate(ctx); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot after the session")
	}
	if snap.Data.Session == nil {
		t.Fatal("expected session state in snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("expected snapshot sequence to track the event log")
	}
	if len(snap.Data.Session.ResponseTimes) == 0 {
		t.Error("expected recorded response times in snapshot")
	}
}

func TestSimulateNoAdjacentSkillRepeats(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 19)
	ctx := context.Background()

	summary, err := r.Simulate(ctx)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if summary.Plan.ForcedRepeats == 0 {
		qs := summary.Plan.Questions
		for i := 1; i < len(qs); i++ {
			if qs[i].SkillID == qs[i-1].SkillID {
				t.Errorf("adjacent repeat at positions %d-%d: %s", i-1, i, qs[i].SkillID)
			}
		}
	}
}

func TestSimulateDeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	run := func(dsn string, seed uint64) []string {
		s, err := store.Open(dsn)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		defer s.Close()
		r := testRunner(t, s, nil, seed)
		summary, err := r.Simulate(ctx)
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		order := make([]string, len(summary.Plan.Questions))
		for i, q := range summary.Plan.Questions {
			order[i] = q.QuestionID
		}
		return order
	}

	a := run("file:simdet1?mode=memory&cache=shared", 42)
	b := run("file:simdet2?mode=memory&cache=shared", 42)

	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Errorf("same seed produced different schedules:\n%v\n%v", a, b)
	}
}

func TestSimulateUsesGeneratedContent(t *testing.T) {
	s := openTestStore(t)

	// Enough canned variation responses for every non-retrieval slot.
	mock := content.NewMockProvider()
	for range 40 {
		vq, _ := json.Marshal(content.VariedQuestion{
			OriginalQuestion:     "base",
			VariedQuestion:       "generated question text",
			VariationType:        "context",
			VariationDescription: "canned",
		})
		mock.AddResponse(content.MockResponse{Content: vq})
	}

	r := testRunner(t, s, mock, 5)
	summary, err := r.Simulate(context.Background())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if mock.CallCount() == 0 {
		t.Fatal("expected provider calls during simulation")
	}

	found := false
	for _, rec := range summary.Transcript {
		if rec.Text == "generated question text" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected at least one transcript entry with generated text")
	}
}

func TestSimulateSecondSessionSeesHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r1 := testRunner(t, s, nil, 1)
	if _, err := r1.Simulate(ctx); err != nil {
		t.Fatalf("first session: %v", err)
	}

	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	before, err := events.AttemptCount(ctx, "fraction-addition")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if before == 0 {
		t.Fatal("expected attempts recorded for fraction-addition")
	}

	r2 := testRunner(t, s, nil, 2)
	if _, err := r2.Simulate(ctx); err != nil {
		t.Fatalf("second session: %v", err)
	}

	after, err := events.AttemptCount(ctx, "fraction-addition")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if after <= before {
		t.Errorf("attempts = %d after second session, want > %d", after, before)
	}
}

func TestSimulateReportsMasteryEstimates(t *testing.T) {
	s := openTestStore(t)
	r := testRunner(t, s, nil, 9)

	summary, err := r.Simulate(context.Background())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if len(summary.Mastery) != len(DemoSkills(time.Now())) {
		t.Fatalf("mastery deltas = %d, want one per skill", len(summary.Mastery))
	}
	for _, m := range summary.Mastery {
		if m.After < 0 || m.After > 1 {
			t.Errorf("%s: estimate %v out of range", m.SkillName, m.After)
		}
		if m.After == m.Before {
			t.Errorf("%s: estimate unchanged after a full session", m.SkillName)
		}
	}
}
