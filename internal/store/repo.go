package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID         string
	SkillID           string
	QuestionID        string
	VariationType     string
	Retrieval         bool
	Correct           bool
	TimeMs            int64
	Confidence        int
	HintsUsed         int
	RetrievalStrength float64
}

// BreakEventData captures a break recommendation and its outcome.
type BreakEventData struct {
	SessionID     string
	BreakType     string
	Urgency       string
	Reason        string
	FatigueLevel  float64
	DurationMs    int64
	Completed     bool
	RecoveryScore float64
	Improvement   float64
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID       string
	Action          string // "started" or "ended"
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	SkillMix        map[string]float64
	RetentionBoost  float64
	ForcedRepeats   int
}

// ContentRequestEventData captures one content-provider call.
type ContentRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SkillStats aggregates a skill's answer history.
type SkillStats struct {
	SkillID          string
	Attempts         int
	Correct          int
	Accuracy         float64
	RetrievalTests   int
	AvgStrength      float64
	LastAnswered     time.Time
	LastRetrievalRun time.Time
}

// BreakStats aggregates break history.
type BreakStats struct {
	Taken          int
	Skipped        int
	AvgRecovery    float64
	MeasuredBreaks int
	ByType         map[string]int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendBreakEvent records a break recommendation outcome.
	AppendBreakEvent(ctx context.Context, data BreakEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendContentRequest records a content-provider call.
	AppendContentRequest(ctx context.Context, data ContentRequestEventData) error

	// SkillAccuracy returns historical accuracy for a skill, or 0
	// with no attempts.
	SkillAccuracy(ctx context.Context, skillID string) (float64, error)

	// SkillStats returns the full answer aggregate for a skill.
	SkillStats(ctx context.Context, skillID string) (*SkillStats, error)

	// AttemptCount returns how many answers exist for a skill.
	AttemptCount(ctx context.Context, skillID string) (int, error)

	// LastRetrievalTest returns when a skill was last answered as a
	// retrieval prompt; zero time when never.
	LastRetrievalTest(ctx context.Context, skillID string) (time.Time, error)

	// RecentVariations returns the variation types of a skill's most
	// recent answers, newest first.
	RecentVariations(ctx context.Context, skillID string, lastN int) ([]string, error)

	// CorrectnessHistory returns a skill's answers in event order,
	// oldest first, with the time span they cover.
	CorrectnessHistory(ctx context.Context, skillID string) ([]bool, time.Duration, error)

	// BreakStats aggregates break history across sessions.
	BreakStats(ctx context.Context) (*BreakStats, error)

	// LastSequence returns the most recently assigned event sequence
	// number, 0 when the log is empty.
	LastSequence(ctx context.Context) (int64, error)
}

// SnapshotData captures the scheduler-visible learner state.
type SnapshotData struct {
	Version int `json:"version"`

	// Session is the telemetry snapshot of the last active session.
	Session *SessionStateData `json:"session,omitempty"`
}

// SessionStateData is the persisted form of telemetry.SessionState.
type SessionStateData struct {
	SessionID     string  `json:"session_id"`
	SessionStart  string  `json:"session_start"`
	LastBreak     string  `json:"last_break,omitempty"`
	BreaksTaken   int     `json:"breaks_taken"`
	BreaksSkipped int     `json:"breaks_skipped"`
	ResponseTimes []int64 `json:"response_times"`
	Correctness   []bool  `json:"correctness"`
	CognitiveLoad float64 `json:"cognitive_load"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
