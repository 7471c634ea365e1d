// Code generated by ent, DO NOT EDIT.

package touch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the touch type in the database.
	Label = "touch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubscriptionID holds the string denoting the subscription_id field in the database.
	FieldSubscriptionID = "subscription_id"
	// FieldCycle holds the string denoting the cycle field in the database.
	FieldCycle = "cycle"
	// FieldSequenceIndex holds the string denoting the sequence_index field in the database.
	FieldSequenceIndex = "sequence_index"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldScheduledDate holds the string denoting the scheduled_date field in the database.
	FieldScheduledDate = "scheduled_date"
	// FieldScheduledTime holds the string denoting the scheduled_time field in the database.
	FieldScheduledTime = "scheduled_time"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldOutcomeNotes holds the string denoting the outcome_notes field in the database.
	FieldOutcomeNotes = "outcome_notes"
	// FieldLinkedTaskID holds the string denoting the linked_task_id field in the database.
	FieldLinkedTaskID = "linked_task_id"
	// FieldLinkedReminderID holds the string denoting the linked_reminder_id field in the database.
	FieldLinkedReminderID = "linked_reminder_id"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSubscription holds the string denoting the subscription edge name in mutations.
	EdgeSubscription = "subscription"
	// EdgeLogs holds the string denoting the logs edge name in mutations.
	EdgeLogs = "logs"
	// Table holds the table name of the touch in the database.
	Table = "touches"
	// SubscriptionTable is the table that holds the subscription relation/edge.
	SubscriptionTable = "touches"
	// SubscriptionInverseTable is the table name for the Subscription entity.
	// It exists in this package in order to avoid circular dependency with the "subscription" package.
	SubscriptionInverseTable = "subscriptions"
	// SubscriptionColumn is the table column denoting the subscription relation/edge.
	SubscriptionColumn = "subscription_id"
	// LogsTable is the table that holds the logs relation/edge.
	LogsTable = "touch_logs"
	// LogsInverseTable is the table name for the TouchLog entity.
	// It exists in this package in order to avoid circular dependency with the "touchlog" package.
	LogsInverseTable = "touch_logs"
	// LogsColumn is the table column denoting the logs relation/edge.
	LogsColumn = "touch_id"
)

// Columns holds all SQL columns for touch fields.
var Columns = []string{
	FieldID,
	FieldSubscriptionID,
	FieldCycle,
	FieldSequenceIndex,
	FieldMethod,
	FieldScheduledDate,
	FieldScheduledTime,
	FieldAssignedTo,
	FieldStatus,
	FieldOutcome,
	FieldOutcomeNotes,
	FieldLinkedTaskID,
	FieldLinkedReminderID,
	FieldResolvedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SubscriptionIDValidator is a validator for the "subscription_id" field. It is called by the builders before save.
	SubscriptionIDValidator func(int) error
	// CycleValidator is a validator for the "cycle" field. It is called by the builders before save.
	CycleValidator func(int) error
	// SequenceIndexValidator is a validator for the "sequence_index" field. It is called by the builders before save.
	SequenceIndexValidator func(int) error
	// ScheduledTimeValidator is a validator for the "scheduled_time" field. It is called by the builders before save.
	ScheduledTimeValidator func(string) error
	// AssignedToValidator is a validator for the "assigned_to" field. It is called by the builders before save.
	AssignedToValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Method defines the type for the "method" enum field.
type Method string

// Method values.
const (
	MethodCall     Method = "call"
	MethodWhatsapp Method = "whatsapp"
	MethodVisit    Method = "visit"
	MethodEmail    Method = "email"
	MethodMeeting  Method = "meeting"
)

func (m Method) String() string {
	return string(m)
}

// MethodValidator is a validator for the "method" field enum values. It is called by the builders before save.
func MethodValidator(m Method) error {
	switch m {
	case MethodCall, MethodWhatsapp, MethodVisit, MethodEmail, MethodMeeting:
		return nil
	default:
		return fmt.Errorf("touch: invalid enum value for method field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("touch: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Touch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubscriptionID orders the results by the subscription_id field.
func BySubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionID, opts...).ToFunc()
}

// ByCycle orders the results by the cycle field.
func ByCycle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycle, opts...).ToFunc()
}

// BySequenceIndex orders the results by the sequence_index field.
func BySequenceIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceIndex, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByScheduledDate orders the results by the scheduled_date field.
func ByScheduledDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledDate, opts...).ToFunc()
}

// ByScheduledTime orders the results by the scheduled_time field.
func ByScheduledTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledTime, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByOutcomeNotes orders the results by the outcome_notes field.
func ByOutcomeNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeNotes, opts...).ToFunc()
}

// ByLinkedTaskID orders the results by the linked_task_id field.
func ByLinkedTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedTaskID, opts...).ToFunc()
}

// ByLinkedReminderID orders the results by the linked_reminder_id field.
func ByLinkedReminderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedReminderID, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubscriptionField orders the results by subscription field.
func BySubscriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionStep(), sql.OrderByField(field, opts...))
	}
}

// ByLogsCount orders the results by logs count.
func ByLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogsStep(), opts...)
	}
}

// ByLogs orders the results by logs terms.
func ByLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubscriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubscriptionTable, SubscriptionColumn),
	)
}
func newLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
	)
}
