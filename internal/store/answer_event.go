package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pacelab/pacer/ent"
	"github.com/pacelab/pacer/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetQuestionID(data.QuestionID).
		SetVariationType(data.VariationType).
		SetRetrieval(data.Retrieval).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetConfidence(data.Confidence).
		SetHintsUsed(data.HintsUsed).
		SetRetrievalStrength(data.RetrievalStrength).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct answers: %w", err)
	}

	return float64(correct) / float64(total), nil
}

func (r *eventRepo) AttemptCount(ctx context.Context, skillID string) (int, error) {
	count, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return count, nil
}

func (r *eventRepo) LastRetrievalTest(ctx context.Context, skillID string) (time.Time, error) {
	e, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID), answerevent.Retrieval(true)).
		Order(ent.Desc(answerevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last retrieval test: %w", err)
	}
	return e.Timestamp, nil
}

func (r *eventRepo) RecentVariations(ctx context.Context, skillID string, lastN int) ([]string, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID), answerevent.VariationTypeNEQ("")).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent variations: %w", err)
	}

	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.VariationType
	}
	return types, nil
}

func (r *eventRepo) CorrectnessHistory(ctx context.Context, skillID string) ([]bool, time.Duration, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query answer history: %w", err)
	}

	flags := make([]bool, len(events))
	for i, e := range events {
		flags[i] = e.Correct
	}

	var span time.Duration
	if len(events) > 1 {
		span = events[len(events)-1].Timestamp.Sub(events[0].Timestamp)
	}
	return flags, span, nil
}

func (r *eventRepo) SkillStats(ctx context.Context, skillID string) (*SkillStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill answers: %w", err)
	}

	stats := &SkillStats{SkillID: skillID}
	strengthSum := 0.0
	for _, e := range events {
		stats.Attempts++
		if e.Correct {
			stats.Correct++
		}
		stats.LastAnswered = e.Timestamp
		if e.Retrieval {
			stats.RetrievalTests++
			stats.LastRetrievalRun = e.Timestamp
			strengthSum += e.RetrievalStrength
		}
	}
	if stats.Attempts > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}
	if stats.RetrievalTests > 0 {
		stats.AvgStrength = strengthSum / float64(stats.RetrievalTests)
	}
	return stats, nil
}
