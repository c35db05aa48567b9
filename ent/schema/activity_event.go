package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records one raw scorable activity exactly as the caller
// reported it, so progress can be refolded from the log at any time.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("study-session, practice-test, question-answered, social-activity, milestone"),
		field.String("base_activity_key").
			NotEmpty(),
		field.String("difficulty").
			Optional().
			Comment("easy, medium, or hard; empty when not applicable"),
		field.Int("duration_minutes").
			Default(0),
		field.Int("performance_percent").
			Default(0),
		field.Int("streak_days").
			Default(0),
		field.Bool("is_group_activity").
			Default(false),
		field.String("time_of_day").
			Default("normal"),
		field.Bool("is_weekend").
			Default(false),
		field.Time("occurred_at").
			Comment("When the activity happened, as opposed to when it was recorded"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
		index.Fields("user_id", "occurred_at"),
	}
}
