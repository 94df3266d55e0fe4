package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BreakEvent records a recommended break and its outcome.
type BreakEvent struct {
	ent.Schema
}

func (BreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("break_type").
			NotEmpty().
			Comment("breathing, movement, mindfulness, or gaze_shift"),
		field.String("urgency").
			NotEmpty().
			Comment("Urgency level at recommendation time"),
		field.String("reason").
			Comment("Fatigue indicators that drove the recommendation"),
		field.Float("fatigue_level").
			Comment("Detector score when recommended"),
		field.Int64("duration_ms").
			Comment("Suggested break length"),
		field.Bool("completed").
			Comment("False when the learner skipped the break"),
		field.Float("recovery_score").
			Comment("Post-break recovery band, 0 when unmeasured"),
		field.Float("improvement").
			Comment("Relative response-time change across the break"),
	}
}

func (BreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("completed"),
	}
}
