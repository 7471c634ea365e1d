package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PresetStep holds the schema definition for the PresetStep entity.
type PresetStep struct {
	ent.Schema
}

// Fields of the PresetStep.
func (PresetStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("preset_id").
			Positive().
			Comment("Preset this step belongs to"),

		field.Int("step_order").
			NonNegative().
			Comment("Position of this step in the sequence (0, 1, 2...)"),

		field.Enum("method").
			Values("call", "whatsapp", "visit", "email", "meeting").
			Comment("Contact method used for this touch"),

		field.Int("interval_days").
			NonNegative().
			Comment("Days to wait after the previous step (0 = same day as anchor/previous step)"),

		field.Enum("assignee_rule").
			Values("entity_owner", "specific_user", "field_staff").
			Default("entity_owner").
			Comment("How the assignee of the materialized touch is resolved"),

		field.Int("assignee_id").
			Optional().
			Comment("Fixed user for the specific_user rule"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the PresetStep.
func (PresetStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("preset", Preset.Type).
			Ref("steps").
			Field("preset_id").
			Unique().
			Required(),
	}
}

// Indexes of the PresetStep.
func (PresetStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("preset_id", "step_order").
			Unique().
			StorageKey("idx_preset_step_order"),
	}
}
