package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

// Subscription holds the schema definition for the Subscription entity.
// A subscription attaches one touch sequence to one entity and tracks
// progress through repeated cycles of that sequence.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("entity_type").
			Values("lead", "customer", "contact").
			Comment("Kind of entity this sequence is attached to"),

		field.Int("entity_id").
			Positive().
			Comment("Identifier of the entity in the owning directory"),

		field.String("entity_name").
			Optional().
			MaxLen(300).
			Comment("Display snapshot of the entity name at activation time"),

		field.String("entity_phone").
			Optional().
			MaxLen(20).
			Comment("Entity phone in E.164, normalized at activation"),

		field.Int("preset_id").
			Optional().
			Nillable().
			Comment("Preset this subscription was started from (null = custom sequence)"),

		field.JSON("steps", []domain.TemplateStep{}).
			Comment("Template snapshot used to materialize every cycle; survives preset deletion"),

		field.Enum("cycle_behavior").
			Values("one_time", "auto_repeat", "user_defined").
			Default("one_time").
			Comment("Effective behavior when a cycle is fully resolved, frozen at activation"),

		field.Int("assigned_to").
			Positive().
			Comment("User responsible for the subscription as a whole"),

		field.Enum("status").
			Values("active", "paused", "completed", "cancelled").
			Default("active").
			Comment("Lifecycle status; completed and cancelled are terminal"),

		field.Int("cycle_count").
			Min(1).
			Default(1).
			Comment("Number of the cycle currently in progress (1-based)"),

		field.Int("max_cycles").
			Optional().
			Nillable().
			Comment("Cap for auto_repeat; reaching it completes the subscription"),

		field.Int("current_step").
			NonNegative().
			Default(0).
			Comment("Count of resolved touches in the current cycle, for progress display"),

		field.Time("pause_until").
			Optional().
			Nillable().
			Comment("Date after which callers may resume a paused subscription"),

		field.String("pause_reason").
			Optional().
			Comment("Free-form reason recorded when pausing"),

		field.Bool("skip_weekends").
			Default(false).
			Comment("Move touches falling on the rest day to the next working day"),

		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the subscription was activated"),

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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("preset", Preset.Type).
			Ref("subscriptions").
			Field("preset_id").
			Unique(),

		edge.To("touches", Touch.Type).
			Comment("All touches materialized for this subscription, across cycles"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		// Find the subscription attached to an entity
		index.Fields("entity_type", "entity_id", "status").
			StorageKey("idx_subscription_entity"),

		index.Fields("assigned_to", "status").
			StorageKey("idx_subscription_assignee"),

		index.Fields("status", "pause_until").
			StorageKey("idx_subscription_pause"),

		index.Fields("started_at"),
	}
}
