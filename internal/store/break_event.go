package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendBreakEvent(ctx context.Context, data BreakEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BreakEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetBreakType(data.BreakType).
		SetUrgency(data.Urgency).
		SetReason(data.Reason).
		SetFatigueLevel(data.FatigueLevel).
		SetDurationMs(data.DurationMs).
		SetCompleted(data.Completed).
		SetRecoveryScore(data.RecoveryScore).
		SetImprovement(data.Improvement).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save break event: %w", err)
	}
	return nil
}

func (r *eventRepo) BreakStats(ctx context.Context) (*BreakStats, error) {
	events, err := r.client.BreakEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query break events: %w", err)
	}

	stats := &BreakStats{ByType: make(map[string]int)}
	recoverySum := 0.0
	for _, e := range events {
		if !e.Completed {
			stats.Skipped++
			continue
		}
		stats.Taken++
		stats.ByType[e.BreakType]++
		if e.RecoveryScore > 0 {
			stats.MeasuredBreaks++
			recoverySum += e.RecoveryScore
		}
	}
	if stats.MeasuredBreaks > 0 {
		stats.AvgRecovery = recoverySum / float64(stats.MeasuredBreaks)
	}
	return stats, nil
}
