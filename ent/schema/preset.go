package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Preset holds the schema definition for the Preset entity.
type Preset struct {
	ent.Schema
}

// Fields of the Preset.
func (Preset) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Display name of the touch sequence template"),

		field.String("description").
			Optional().
			Comment("Optional description shown in the preset picker"),

		field.Enum("default_cycle_behavior").
			Values("one_time", "auto_repeat", "user_defined").
			Default("one_time").
			Comment("What happens when every touch of a cycle is resolved"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive presets are hidden from pickers but keep existing subscriptions intact"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Preset.
func (Preset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PresetStep.Type).
			Comment("Ordered step definitions of this template"),

		edge.To("subscriptions", Subscription.Type).
			Comment("Subscriptions that were started from this preset"),
	}
}

// Indexes of the Preset.
func (Preset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("name"),
	}
}
