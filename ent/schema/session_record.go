package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the merged play history for one exercise: one row per
// (subject, topic, level, exercise). Repeat plays fold into the existing
// row instead of appending.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			NotEmpty().
			Comment("Subject key, lowercase (e.g. matematica)"),
		field.String("topic").
			NotEmpty().
			Comment("Topic key, lowercase"),
		field.String("level").
			NotEmpty().
			Comment("Level key (e.g. 1, 2)"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Game identifier within the bundle (matching, memory, timed)"),
		field.Int("score").
			Default(0).
			Comment("Best score across all plays"),
		field.Int("total_questions").
			Default(0),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Accumulated play time across all attempts"),
		field.Int("attempts").
			Default(0),
		field.Bool("completed").
			Default(false).
			Comment("True once any play reached the completion ratio"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject", "topic", "level", "exercise_id").Unique(),
		index.Fields("subject"),
		index.Fields("completed"),
	}
}
