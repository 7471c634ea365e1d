package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Touch holds the schema definition for the Touch entity.
// A touch is one dated contact action within a cycle. Touches are created
// in batches when a cycle starts and are never deleted; resolved touches
// form the immutable contact history.
type Touch struct {
	ent.Schema
}

// Fields of the Touch.
func (Touch) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subscription_id").
			Positive().
			Comment("Subscription this touch belongs to"),

		field.Int("cycle").
			Min(1).
			Comment("Cycle number this touch was materialized for (1-based)"),

		field.Int("sequence_index").
			NonNegative().
			Comment("Position within the cycle; contiguous starting at 0"),

		field.Enum("method").
			Values("call", "whatsapp", "visit", "email", "meeting").
			Comment("Contact method"),

		field.Time("scheduled_date").
			Comment("Date this touch is due"),

		field.String("scheduled_time").
			Optional().
			MaxLen(5).
			Comment("Optional time of day in HH:MM"),

		field.Int("assigned_to").
			Positive().
			Comment("User the touch is assigned to"),

		field.Enum("status").
			Values("pending", "completed", "skipped").
			Default("pending").
			Comment("Per-touch lifecycle; completed and skipped are terminal"),

		field.String("outcome").
			Optional().
			Comment("Outcome recorded at completion"),

		field.String("outcome_notes").
			Optional().
			Comment("Free-form notes recorded at completion"),

		field.String("linked_task_id").
			Optional().
			Comment("Follow-up task in the external task service"),

		field.String("linked_reminder_id").
			Optional().
			Comment("Reminder in the external reminder service"),

		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("When the touch reached a terminal status"),

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

// Edges of the Touch.
func (Touch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subscription", Subscription.Type).
			Ref("touches").
			Field("subscription_id").
			Unique().
			Required(),

		edge.To("logs", TouchLog.Type).
			Comment("Informational outcome entries that did not resolve the touch"),
	}
}

// Indexes of the Touch.
func (Touch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscription_id", "cycle", "sequence_index").
			Unique().
			StorageKey("idx_touch_cycle_position"),

		// Due/overdue lookups
		index.Fields("status", "scheduled_date").
			StorageKey("idx_touch_due"),

		index.Fields("assigned_to", "status").
			StorageKey("idx_touch_assignee"),
	}
}
