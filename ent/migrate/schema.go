// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "actor_id", Type: field.TypeInt, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"subscription_activated", "subscription_paused", "subscription_resumed", "subscription_cancelled", "subscription_completed", "cycle_started", "cycle_repeated", "touch_completed", "touch_skipped", "touch_snoozed", "touch_rescheduled", "touch_reassigned", "touch_edited", "touch_added", "preset_created", "preset_updated", "preset_deleted", "export_created", "backup_created"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_actor_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1]},
			},
			{
				Name:    "activitylog_action",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2]},
			},
			{
				Name:    "activitylog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[3], ActivityLogsColumns[4]},
			},
			{
				Name:    "activitylog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[8]},
			},
		},
	}
	// PresetsColumns holds the columns for the "presets" table.
	PresetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "default_cycle_behavior", Type: field.TypeEnum, Enums: []string{"one_time", "auto_repeat", "user_defined"}, Default: "one_time"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PresetsTable holds the schema information for the "presets" table.
	PresetsTable = &schema.Table{
		Name:       "presets",
		Columns:    PresetsColumns,
		PrimaryKey: []*schema.Column{PresetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "preset_is_active",
				Unique:  false,
				Columns: []*schema.Column{PresetsColumns[4]},
			},
			{
				Name:    "preset_name",
				Unique:  false,
				Columns: []*schema.Column{PresetsColumns[1]},
			},
		},
	}
	// PresetStepsColumns holds the columns for the "preset_steps" table.
	PresetStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"call", "whatsapp", "visit", "email", "meeting"}},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "assignee_rule", Type: field.TypeEnum, Enums: []string{"entity_owner", "specific_user", "field_staff"}, Default: "entity_owner"},
		{Name: "assignee_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "preset_id", Type: field.TypeInt},
	}
	// PresetStepsTable holds the schema information for the "preset_steps" table.
	PresetStepsTable = &schema.Table{
		Name:       "preset_steps",
		Columns:    PresetStepsColumns,
		PrimaryKey: []*schema.Column{PresetStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "preset_steps_presets_steps",
				Columns:    []*schema.Column{PresetStepsColumns[7]},
				RefColumns: []*schema.Column{PresetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_preset_step_order",
				Unique:  true,
				Columns: []*schema.Column{PresetStepsColumns[7], PresetStepsColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"lead", "customer", "contact"}},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "entity_name", Type: field.TypeString, Nullable: true, Size: 300},
		{Name: "entity_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "cycle_behavior", Type: field.TypeEnum, Enums: []string{"one_time", "auto_repeat", "user_defined"}, Default: "one_time"},
		{Name: "assigned_to", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed", "cancelled"}, Default: "active"},
		{Name: "cycle_count", Type: field.TypeInt, Default: 1},
		{Name: "max_cycles", Type: field.TypeInt, Nullable: true},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "pause_until", Type: field.TypeTime, Nullable: true},
		{Name: "pause_reason", Type: field.TypeString, Nullable: true},
		{Name: "skip_weekends", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "preset_id", Type: field.TypeInt, Nullable: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_presets_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[18]},
				RefColumns: []*schema.Column{PresetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_subscription_entity",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[1], SubscriptionsColumns[2], SubscriptionsColumns[8]},
			},
			{
				Name:    "idx_subscription_assignee",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[7], SubscriptionsColumns[8]},
			},
			{
				Name:    "idx_subscription_pause",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[8], SubscriptionsColumns[12]},
			},
			{
				Name:    "subscription_started_at",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[15]},
			},
		},
	}
	// TouchesColumns holds the columns for the "touches" table.
	TouchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cycle", Type: field.TypeInt},
		{Name: "sequence_index", Type: field.TypeInt},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"call", "whatsapp", "visit", "email", "meeting"}},
		{Name: "scheduled_date", Type: field.TypeTime},
		{Name: "scheduled_time", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "assigned_to", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "skipped"}, Default: "pending"},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "outcome_notes", Type: field.TypeString, Nullable: true},
		{Name: "linked_task_id", Type: field.TypeString, Nullable: true},
		{Name: "linked_reminder_id", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subscription_id", Type: field.TypeInt},
	}
	// TouchesTable holds the schema information for the "touches" table.
	TouchesTable = &schema.Table{
		Name:       "touches",
		Columns:    TouchesColumns,
		PrimaryKey: []*schema.Column{TouchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "touches_subscriptions_touches",
				Columns:    []*schema.Column{TouchesColumns[15]},
				RefColumns: []*schema.Column{SubscriptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_touch_cycle_position",
				Unique:  true,
				Columns: []*schema.Column{TouchesColumns[15], TouchesColumns[1], TouchesColumns[2]},
			},
			{
				Name:    "idx_touch_due",
				Unique:  false,
				Columns: []*schema.Column{TouchesColumns[7], TouchesColumns[4]},
			},
			{
				Name:    "idx_touch_assignee",
				Unique:  false,
				Columns: []*schema.Column{TouchesColumns[6], TouchesColumns[7]},
			},
		},
	}
	// TouchLogsColumns holds the columns for the "touch_logs" table.
	TouchLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "follow_up", Type: field.TypeEnum, Enums: []string{"none", "snooze", "reschedule"}, Default: "none"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "touch_id", Type: field.TypeInt},
	}
	// TouchLogsTable holds the schema information for the "touch_logs" table.
	TouchLogsTable = &schema.Table{
		Name:       "touch_logs",
		Columns:    TouchLogsColumns,
		PrimaryKey: []*schema.Column{TouchLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "touch_logs_touches_logs",
				Columns:    []*schema.Column{TouchLogsColumns[5]},
				RefColumns: []*schema.Column{TouchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "touchlog_touch_id",
				Unique:  false,
				Columns: []*schema.Column{TouchLogsColumns[5]},
			},
			{
				Name:    "touchlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{TouchLogsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		PresetsTable,
		PresetStepsTable,
		SubscriptionsTable,
		TouchesTable,
		TouchLogsTable,
	}
)

func init() {
	PresetStepsTable.ForeignKeys[0].RefTable = PresetsTable
	SubscriptionsTable.ForeignKeys[0].RefTable = PresetsTable
	TouchesTable.ForeignKeys[0].RefTable = SubscriptionsTable
	TouchLogsTable.ForeignKeys[0].RefTable = TouchesTable
}
