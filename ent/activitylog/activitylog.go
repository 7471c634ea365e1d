// Code generated by ent, DO NOT EDIT.

package activitylog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activitylog type in the database.
	Label = "activity_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the activitylog in the database.
	Table = "activity_logs"
)

// Columns holds all SQL columns for activitylog fields.
var Columns = []string{
	FieldID,
	FieldActorID,
	FieldAction,
	FieldResourceType,
	FieldResourceID,
	FieldMetadata,
	FieldSeverity,
	FieldDescription,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionSubscriptionActivated Action = "subscription_activated"
	ActionSubscriptionPaused    Action = "subscription_paused"
	ActionSubscriptionResumed   Action = "subscription_resumed"
	ActionSubscriptionCancelled Action = "subscription_cancelled"
	ActionSubscriptionCompleted Action = "subscription_completed"
	ActionCycleStarted          Action = "cycle_started"
	ActionCycleRepeated         Action = "cycle_repeated"
	ActionTouchCompleted        Action = "touch_completed"
	ActionTouchSkipped          Action = "touch_skipped"
	ActionTouchSnoozed          Action = "touch_snoozed"
	ActionTouchRescheduled      Action = "touch_rescheduled"
	ActionTouchReassigned       Action = "touch_reassigned"
	ActionTouchEdited           Action = "touch_edited"
	ActionTouchAdded            Action = "touch_added"
	ActionPresetCreated         Action = "preset_created"
	ActionPresetUpdated         Action = "preset_updated"
	ActionPresetDeleted         Action = "preset_deleted"
	ActionExportCreated         Action = "export_created"
	ActionBackupCreated         Action = "backup_created"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionSubscriptionActivated, ActionSubscriptionPaused, ActionSubscriptionResumed, ActionSubscriptionCancelled, ActionSubscriptionCompleted, ActionCycleStarted, ActionCycleRepeated, ActionTouchCompleted, ActionTouchSkipped, ActionTouchSnoozed, ActionTouchRescheduled, ActionTouchReassigned, ActionTouchEdited, ActionTouchAdded, ActionPresetCreated, ActionPresetUpdated, ActionPresetDeleted, ActionExportCreated, ActionBackupCreated:
		return nil
	default:
		return fmt.Errorf("activitylog: invalid enum value for action field: %q", a)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityInfo is the default value of the Severity enum.
const DefaultSeverity = SeverityInfo

// Severity values.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("activitylog: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the ActivityLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
