package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
// Append-only; the engine writes every lifecycle transition here and
// never reads the log back.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("actor_id").
			Optional().
			Nillable().
			Comment("User who performed the action (null for system jobs)"),

		field.Enum("action").
			Values(
				"subscription_activated",
				"subscription_paused",
				"subscription_resumed",
				"subscription_cancelled",
				"subscription_completed",
				"cycle_started",
				"cycle_repeated",
				"touch_completed",
				"touch_skipped",
				"touch_snoozed",
				"touch_rescheduled",
				"touch_reassigned",
				"touch_edited",
				"touch_added",
				"preset_created",
				"preset_updated",
				"preset_deleted",
				"export_created",
				"backup_created",
			).
			Comment("Action performed"),

		field.String("resource_type").
			Optional().
			Comment("Type of resource affected (subscription, touch, preset, etc.)"),

		field.String("resource_id").
			Optional().
			Comment("ID of affected resource"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Additional context data"),

		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info").
			Comment("Event severity level"),

		field.String("description").
			Optional().
			Comment("Human-readable description"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of event"),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id"),
		index.Fields("action"),
		index.Fields("resource_type", "resource_id"),
		index.Fields("created_at"),
	}
}
