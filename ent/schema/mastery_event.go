package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a post-answer mastery probability update. The
// latest event per (user, subject, skill) is the current estimate.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.Float("probability").
			Comment("Updated mastery estimate in [0,1]"),
		field.Bool("correct").
			Comment("The answer outcome that drove this update"),
		field.String("question_id").
			Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "subject", "skill"),
	}
}
