package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageEvent records one serving of a question. Counting rows per
// question_id reconstructs the times-used signal the selector reads.
type UsageEvent struct {
	ent.Schema
}

func (UsageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UsageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
	}
}

func (UsageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("user_id"),
	}
}
