// Code generated by ent, DO NOT EDIT.

package subscription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subscription type in the database.
	Label = "subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldEntityName holds the string denoting the entity_name field in the database.
	FieldEntityName = "entity_name"
	// FieldEntityPhone holds the string denoting the entity_phone field in the database.
	FieldEntityPhone = "entity_phone"
	// FieldPresetID holds the string denoting the preset_id field in the database.
	FieldPresetID = "preset_id"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldCycleBehavior holds the string denoting the cycle_behavior field in the database.
	FieldCycleBehavior = "cycle_behavior"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCycleCount holds the string denoting the cycle_count field in the database.
	FieldCycleCount = "cycle_count"
	// FieldMaxCycles holds the string denoting the max_cycles field in the database.
	FieldMaxCycles = "max_cycles"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldPauseUntil holds the string denoting the pause_until field in the database.
	FieldPauseUntil = "pause_until"
	// FieldPauseReason holds the string denoting the pause_reason field in the database.
	FieldPauseReason = "pause_reason"
	// FieldSkipWeekends holds the string denoting the skip_weekends field in the database.
	FieldSkipWeekends = "skip_weekends"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePreset holds the string denoting the preset edge name in mutations.
	EdgePreset = "preset"
	// EdgeTouches holds the string denoting the touches edge name in mutations.
	EdgeTouches = "touches"
	// Table holds the table name of the subscription in the database.
	Table = "subscriptions"
	// PresetTable is the table that holds the preset relation/edge.
	PresetTable = "subscriptions"
	// PresetInverseTable is the table name for the Preset entity.
	// It exists in this package in order to avoid circular dependency with the "preset" package.
	PresetInverseTable = "presets"
	// PresetColumn is the table column denoting the preset relation/edge.
	PresetColumn = "preset_id"
	// TouchesTable is the table that holds the touches relation/edge.
	TouchesTable = "touches"
	// TouchesInverseTable is the table name for the Touch entity.
	// It exists in this package in order to avoid circular dependency with the "touch" package.
	TouchesInverseTable = "touches"
	// TouchesColumn is the table column denoting the touches relation/edge.
	TouchesColumn = "subscription_id"
)

// Columns holds all SQL columns for subscription fields.
var Columns = []string{
	FieldID,
	FieldEntityType,
	FieldEntityID,
	FieldEntityName,
	FieldEntityPhone,
	FieldPresetID,
	FieldSteps,
	FieldCycleBehavior,
	FieldAssignedTo,
	FieldStatus,
	FieldCycleCount,
	FieldMaxCycles,
	FieldCurrentStep,
	FieldPauseUntil,
	FieldPauseReason,
	FieldSkipWeekends,
	FieldStartedAt,
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
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(int) error
	// EntityNameValidator is a validator for the "entity_name" field. It is called by the builders before save.
	EntityNameValidator func(string) error
	// EntityPhoneValidator is a validator for the "entity_phone" field. It is called by the builders before save.
	EntityPhoneValidator func(string) error
	// AssignedToValidator is a validator for the "assigned_to" field. It is called by the builders before save.
	AssignedToValidator func(int) error
	// DefaultCycleCount holds the default value on creation for the "cycle_count" field.
	DefaultCycleCount int
	// CycleCountValidator is a validator for the "cycle_count" field. It is called by the builders before save.
	CycleCountValidator func(int) error
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	CurrentStepValidator func(int) error
	// DefaultSkipWeekends holds the default value on creation for the "skip_weekends" field.
	DefaultSkipWeekends bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypeLead     EntityType = "lead"
	EntityTypeCustomer EntityType = "customer"
	EntityTypeContact  EntityType = "contact"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeLead, EntityTypeCustomer, EntityTypeContact:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for entity_type field: %q", et)
	}
}

// CycleBehavior defines the type for the "cycle_behavior" enum field.
type CycleBehavior string

// CycleBehaviorOneTime is the default value of the CycleBehavior enum.
const DefaultCycleBehavior = CycleBehaviorOneTime

// CycleBehavior values.
const (
	CycleBehaviorOneTime     CycleBehavior = "one_time"
	CycleBehaviorAutoRepeat  CycleBehavior = "auto_repeat"
	CycleBehaviorUserDefined CycleBehavior = "user_defined"
)

func (cb CycleBehavior) String() string {
	return string(cb)
}

// CycleBehaviorValidator is a validator for the "cycle_behavior" field enum values. It is called by the builders before save.
func CycleBehaviorValidator(cb CycleBehavior) error {
	switch cb {
	case CycleBehaviorOneTime, CycleBehaviorAutoRepeat, CycleBehaviorUserDefined:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for cycle_behavior field: %q", cb)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Subscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByEntityName orders the results by the entity_name field.
func ByEntityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityName, opts...).ToFunc()
}

// ByEntityPhone orders the results by the entity_phone field.
func ByEntityPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityPhone, opts...).ToFunc()
}

// ByPresetID orders the results by the preset_id field.
func ByPresetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresetID, opts...).ToFunc()
}

// ByCycleBehavior orders the results by the cycle_behavior field.
func ByCycleBehavior(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleBehavior, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCycleCount orders the results by the cycle_count field.
func ByCycleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleCount, opts...).ToFunc()
}

// ByMaxCycles orders the results by the max_cycles field.
func ByMaxCycles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCycles, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByPauseUntil orders the results by the pause_until field.
func ByPauseUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseUntil, opts...).ToFunc()
}

// ByPauseReason orders the results by the pause_reason field.
func ByPauseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseReason, opts...).ToFunc()
}

// BySkipWeekends orders the results by the skip_weekends field.
func BySkipWeekends(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipWeekends, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPresetField orders the results by preset field.
func ByPresetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPresetStep(), sql.OrderByField(field, opts...))
	}
}

// ByTouchesCount orders the results by touches count.
func ByTouchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTouchesStep(), opts...)
	}
}

// ByTouches orders the results by touches terms.
func ByTouches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTouchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPresetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PresetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PresetTable, PresetColumn),
	)
}
func newTouchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TouchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TouchesTable, TouchesColumn),
	)
}
