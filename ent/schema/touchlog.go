package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TouchLog holds the schema definition for the TouchLog entity.
// When an operator logs an outcome but postpones the touch instead of
// resolving it (for example "not reachable, try again Friday"), the outcome
// lands here and the touch itself stays pending.
type TouchLog struct {
	ent.Schema
}

// Fields of the TouchLog.
func (TouchLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("touch_id").
			Positive().
			Comment("Touch this log entry belongs to"),

		field.String("outcome").
			NotEmpty().
			Comment("Outcome reported by the operator"),

		field.String("notes").
			Optional().
			Comment("Free-form notes"),

		field.Enum("follow_up").
			Values("none", "snooze", "reschedule").
			Default("none").
			Comment("Follow-up decision taken together with the outcome"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of the log entry"),
	}
}

// Edges of the TouchLog.
func (TouchLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("touch", Touch.Type).
			Ref("logs").
			Field("touch_id").
			Unique().
			Required(),
	}
}

// Indexes of the TouchLog.
func (TouchLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("touch_id"),
		index.Fields("created_at"),
	}
}
