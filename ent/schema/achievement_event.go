package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement unlock. Unlocks are append-only:
// an achievement is never revoked, and the unique name index guarantees
// each one is recorded at most once.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Achievement identifier (e.g. punteggio-perfetto)"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable unlock reason for the summary screen"),
		field.String("subject").
			Optional().
			Comment("Subject that triggered a mastery unlock, if any"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
