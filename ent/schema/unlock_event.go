package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnlockEvent records an achievement unlock. At most one row exists per
// (user_id, achievement_id); the unique index backs the at-most-once
// awarding guarantee.
type UnlockEvent struct {
	ent.Schema
}

func (UnlockEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UnlockEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("achievement_id").
			NotEmpty(),
		field.Int("xp_reward").
			Default(0),
		field.Time("unlocked_at"),
	}
}

func (UnlockEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "achievement_id").
			Unique(),
	}
}
