package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AwardEvent records one computed XP award, whether scored from an
// activity or credited for an achievement unlock.
type AwardEvent struct {
	ent.Schema
}

func (AwardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AwardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("activity or achievement"),
		field.Int("base_xp"),
		field.Float("total_multiplier").
			Default(1.0),
		field.Int("final_xp"),
		field.String("breakdown").
			Comment("Human-readable audit line"),
		field.Int64("activity_sequence").
			Optional().
			Comment("Sequence of the ActivityEvent this award scored, if any"),
		field.String("achievement_id").
			Optional().
			Comment("Achievement credited, for achievement-sourced awards"),
		field.Time("occurred_at"),
	}
}

func (AwardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("source"),
		index.Fields("user_id", "occurred_at"),
	}
}
