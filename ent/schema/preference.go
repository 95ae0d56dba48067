package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference is the single-row player profile: display name plus
// accessibility toggles. Absence of the row means defaults.
type Preference struct {
	ent.Schema
}

func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Immutable().
			Comment("Always 1; enforces a single row"),
		field.String("player_name").
			Optional(),
		field.Bool("speech_enabled").
			Default(false),
		field.Bool("high_contrast").
			Default(false),
		field.Bool("large_text").
			Default(false),
		field.Bool("reduced_motion").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
