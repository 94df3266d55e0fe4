package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question with the telemetry the
// scheduler consumed for it.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill the question assessed"),
		field.String("question_id").
			NotEmpty().
			Comment("Slot identifier from the interleaved session"),
		field.String("variation_type").
			Comment("context, format, numerical, or phrasing; empty for unvaried"),
		field.Bool("retrieval").
			Comment("Whether this was a pure-recall prompt"),
		field.Bool("correct"),
		field.Int64("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("confidence").
			Min(0).
			Max(5).
			Comment("Learner self-report, 0 when not collected"),
		field.Int("hints_used"),
		field.Float("retrieval_strength").
			Comment("Scored strength for retrieval attempts, 0 otherwise"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("correct"),
	}
}
