package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions with the plan the
// interleaver built.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("started or ended"),
		field.Int("questions_served"),
		field.Int("correct_answers"),
		field.Int("duration_secs"),
		field.JSON("skill_mix", map[string]float64{}).
			Optional().
			Comment("Per-skill fraction of planned slots"),
		field.Float("retention_boost").
			Comment("Estimated retention boost of the generated plan"),
		field.Int("forced_repeats").
			Comment("Adjacent skill repeats the sampler could not avoid"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
