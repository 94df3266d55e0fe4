package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/pacelab/pacer/internal/config"
	"github.com/pacelab/pacer/internal/content"
	"github.com/pacelab/pacer/internal/fatigue"
	"github.com/pacelab/pacer/internal/interleave"
	"github.com/pacelab/pacer/internal/mastery"
	"github.com/pacelab/pacer/internal/microbreak"
	"github.com/pacelab/pacer/internal/retrieval"
	"github.com/pacelab/pacer/internal/skills"
	"github.com/pacelab/pacer/internal/store"
	"github.com/pacelab/pacer/internal/telemetry"
	"github.com/pacelab/pacer/internal/variation"
)

// interQuestionGap is the simulated pause between finishing one
// question and reading the next.
const interQuestionGap = 1500 * time.Millisecond

// recoveryWindow is how many answers on each side of a break feed the
// recovery measurement.
const recoveryWindow = 5

// recentVariationWindow mirrors the selector's exclusion window.
const recentVariationWindow = variation.RecentExclusionWindow

// Options wires a Runner's dependencies.
type Options struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	// Provider generates varied questions and retrieval prompts.
	// Nil disables generated content; templates are served directly.
	Provider content.Provider

	Config *config.Config

	// Seed drives all sampling. Two runs with the same seed and store
	// contents produce the same schedule.
	Seed uint64

	// Start anchors the simulated clock. Zero means time.Now().
	Start time.Time
}

// Runner drives one practice session against the event store, with a
// synthetic learner standing in for a human.
type Runner struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
	gen       *content.Generator
	cfg       *config.Config
	rng       *rand.Rand
	start     time.Time
}

// New creates a Runner from options.
func New(opts Options) *Runner {
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	var gen *content.Generator
	if opts.Provider != nil {
		gen = content.NewGenerator(opts.Provider)
	}

	return &Runner{
		events:    opts.Events,
		snapshots: opts.Snapshots,
		gen:       gen,
		cfg:       opts.Config,
		rng:       rand.New(rand.NewPCG(opts.Seed, 0)),
		start:     start,
	}
}

// skillProgress is the per-skill scheduling context carried through a
// session.
type skillProgress struct {
	attempts   int
	lastTest   time.Time
	recentVars []variation.Type
	prompts    *retrieval.PromptSource
	tracker    *mastery.Tracker
}

// pendingBreak holds a taken break until enough post-break answers
// arrive to measure recovery.
type pendingBreak struct {
	data store.BreakEventData
	pre  []int64
	post []int64
}

// Simulate runs one full practice session with the synthetic learner
// and returns its summary. Every answer, break, and session transition
// is appended to the event log.
func (r *Runner) Simulate(ctx context.Context) (*Summary, error) {
	now := r.start
	skillSet := DemoSkills(now)
	concepts := DemoConcepts()
	learner := newSimLearner(r.rng)

	sessionID := uuid.NewString()
	plan := interleave.Generate(r.rng, skillSet, r.cfg.Session.QuestionsPerSkill, r.cfg.Session.TotalQuestions)

	err := r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      sessionID,
		Action:         "started",
		SkillMix:       plan.SkillMixRatio,
		RetentionBoost: plan.EstimatedRetentionBoost,
		ForcedRepeats:  plan.ForcedRepeats,
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	progress, err := r.loadProgress(ctx, skillSet, concepts)
	if err != nil {
		return nil, err
	}

	state := telemetry.NewSessionState(now)
	summary := &Summary{SessionID: sessionID, Plan: plan}
	var pending *pendingBreak

	for _, q := range plan.Questions {
		now = now.Add(interQuestionGap)

		sk := findSkill(skillSet, q.SkillID)
		prog := progress[q.SkillID]
		sk.PMastery = prog.tracker.Estimate(sk.PMastery)

		f := fatigue.Detect(state, now)
		rec := microbreak.Recommend(state, r.cfg.Breaks, now)
		if rec.ShouldBreak && rec.Urgency >= microbreak.UrgencyRecommended {
			pending = r.flushBreak(ctx, pending)
			now = now.Add(rec.Duration)
			state = state.RecordBreak(now, true)
			pending = &pendingBreak{
				data: store.BreakEventData{
					SessionID:    sessionID,
					BreakType:    string(rec.BreakType),
					Urgency:      rec.Urgency.String(),
					Reason:       rec.Reason,
					FatigueLevel: rec.FatigueLevel,
					DurationMs:   rec.Duration.Milliseconds(),
					Completed:    true,
				},
				pre: telemetry.LastN(state.ResponseTimes, recoveryWindow),
			}
			summary.BreaksTaken++
		}

		dec := retrieval.Decide(sk.PMastery, prog.lastTest, prog.attempts, now)
		isRetrieval := dec.UseRetrieval && prog.prompts.Remaining() > 0

		var questionText, variationType string
		if isRetrieval {
			base, _ := prog.prompts.Next()
			questionText = r.retrievalText(ctx, sk, base)
			summary.RetrievalTests++
		} else {
			vt := variation.SelectType(r.rng, sk, prog.recentVars)
			variationType = string(vt)
			prog.recentVars = appendRecent(prog.recentVars, vt)
			questionText = r.variedText(ctx, sk, q, vt)
			summary.Variations++
		}
		ans := learner.answer(sk, f.Level)
		now = now.Add(time.Duration(ans.TimeMs) * time.Millisecond)
		state = state.RecordAnswer(ans.TimeMs, ans.Correct)
		state = state.WithCognitiveLoad(cognitiveLoad(sk, state))
		prog.attempts++
		prog.tracker.Observe(ans.Correct, ans.TimeMs, targetAnswerMs(sk))

		var strength float64
		if isRetrieval {
			strength = retrieval.Strength(ans.TimeMs, ans.Correct, ans.Confidence, ans.HintsUsed)
			prog.lastTest = now
		}

		err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:         sessionID,
			SkillID:           sk.ID,
			QuestionID:        q.QuestionID,
			VariationType:     variationType,
			Retrieval:         isRetrieval,
			Correct:           ans.Correct,
			TimeMs:            ans.TimeMs,
			Confidence:        ans.Confidence,
			HintsUsed:         ans.HintsUsed,
			RetrievalStrength: strength,
		})
		if err != nil {
			return nil, fmt.Errorf("record answer: %w", err)
		}

		summary.Questions++
		if ans.Correct {
			summary.Correct++
		}
		summary.Transcript = append(summary.Transcript, QuestionRecord{
			Position:      q.Position,
			SkillName:     sk.Name,
			Text:          questionText,
			Retrieval:     isRetrieval,
			VariationType: variationType,
			Correct:       ans.Correct,
			TimeMs:        ans.TimeMs,
		})

		if pending != nil {
			pending.post = append(pending.post, ans.TimeMs)
			if len(pending.post) >= microbreak.MinRecoverySamples {
				pending = r.measureAndFlush(ctx, pending)
			}
		}
	}

	r.flushBreak(ctx, pending)

	summary.Duration = now.Sub(r.start)
	summary.FinalFatigue = fatigue.Detect(state, now).Level
	for _, sk := range skillSet {
		summary.Mastery = append(summary.Mastery, MasteryDelta{
			SkillName: sk.Name,
			Before:    sk.PMastery,
			After:     progress[sk.ID].tracker.Estimate(sk.PMastery),
		})
	}

	err = r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       sessionID,
		Action:          "ended",
		QuestionsServed: summary.Questions,
		CorrectAnswers:  summary.Correct,
		DurationSecs:    int(summary.Duration.Seconds()),
		SkillMix:        plan.SkillMixRatio,
		RetentionBoost:  plan.EstimatedRetentionBoost,
		ForcedRepeats:   plan.ForcedRepeats,
	})
	if err != nil {
		return nil, fmt.Errorf("record session end: %w", err)
	}

	if err := r.saveSnapshot(ctx, sessionID, state, now); err != nil {
		return nil, err
	}

	return summary, nil
}

// loadProgress seeds per-skill scheduling context from event history.
func (r *Runner) loadProgress(ctx context.Context, skillSet []skills.Skill, concepts skills.KeyConcepts) (map[string]*skillProgress, error) {
	progress := make(map[string]*skillProgress, len(skillSet))
	for _, sk := range skillSet {
		attempts, err := r.events.AttemptCount(ctx, sk.ID)
		if err != nil {
			return nil, fmt.Errorf("load attempts for %s: %w", sk.ID, err)
		}
		lastTest, err := r.events.LastRetrievalTest(ctx, sk.ID)
		if err != nil {
			return nil, fmt.Errorf("load last retrieval for %s: %w", sk.ID, err)
		}
		recent, err := r.events.RecentVariations(ctx, sk.ID, recentVariationWindow)
		if err != nil {
			return nil, fmt.Errorf("load variations for %s: %w", sk.ID, err)
		}

		vars := make([]variation.Type, len(recent))
		for i, v := range recent {
			vars[i] = variation.Type(v)
		}

		progress[sk.ID] = &skillProgress{
			attempts:   attempts,
			lastTest:   lastTest,
			recentVars: vars,
			prompts:    retrieval.Prompts(sk.Name, concepts[sk.ID], attempts),
			tracker:    mastery.NewTracker(),
		}
	}
	return progress, nil
}

// variedText produces the question text for a variation slot, falling
// back to the raw instruction when no provider is wired or generation
// fails.
func (r *Runner) variedText(ctx context.Context, sk skills.Skill, q interleave.Question, vt variation.Type) string {
	base := fmt.Sprintf("%s practice, question %d", sk.Name, q.Position+1)
	prompt := variation.BuildPrompt(sk, vt)

	if r.gen == nil {
		return base
	}
	vq, err := r.gen.Vary(ctx, sk, base, prompt)
	if err != nil {
		return base
	}
	return vq.VariedQuestion
}

// retrievalText expands a retrieval template through the provider when
// available.
func (r *Runner) retrievalText(ctx context.Context, sk skills.Skill, base string) string {
	if r.gen == nil {
		return base
	}
	rq, err := r.gen.Retrieval(ctx, sk, base)
	if err != nil {
		return base
	}
	return rq.Question
}

// measureAndFlush scores a pending break's recovery and appends it.
func (r *Runner) measureAndFlush(ctx context.Context, p *pendingBreak) *pendingBreak {
	rec := microbreak.MeasureRecovery(p.pre, p.post)
	p.data.RecoveryScore = rec.Score
	p.data.Improvement = rec.Improvement
	return r.flushBreak(ctx, p)
}

// flushBreak appends a pending break event, if any. Returns nil so
// callers can reassign in one line.
func (r *Runner) flushBreak(ctx context.Context, p *pendingBreak) *pendingBreak {
	if p == nil {
		return nil
	}
	if err := r.events.AppendBreakEvent(ctx, p.data); err != nil {
		// Break telemetry is best-effort; the session continues.
		return nil
	}
	return nil
}

// saveSnapshot persists the final session state keyed to the last event
// sequence.
func (r *Runner) saveSnapshot(ctx context.Context, sessionID string, state telemetry.SessionState, now time.Time) error {
	seq, err := r.events.LastSequence(ctx)
	if err != nil {
		return fmt.Errorf("read last sequence: %w", err)
	}

	err = r.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data: store.SnapshotData{
			Version: 1,
			Session: store.EncodeSessionState(sessionID, state),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// cognitiveLoad estimates momentary load from question difficulty and
// the recent error rate.
func cognitiveLoad(sk skills.Skill, state telemetry.SessionState) float64 {
	recent := telemetry.LastNBools(state.Correctness, 5)
	errRate := 1 - telemetry.Accuracy(recent)
	load := 0.2 + sk.Difficulty*0.4 + errRate*0.4
	if load > 1 {
		load = 1
	}
	return load
}

func findSkill(skillSet []skills.Skill, id string) skills.Skill {
	for _, sk := range skillSet {
		if sk.ID == id {
			return sk
		}
	}
	return skills.Skill{ID: id, Name: id}
}

func appendRecent(recent []variation.Type, t variation.Type) []variation.Type {
	recent = append(recent, t)
	if len(recent) > recentVariationWindow {
		recent = recent[len(recent)-recentVariationWindow:]
	}
	return recent
}
