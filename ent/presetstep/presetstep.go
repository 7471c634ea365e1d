// Code generated by ent, DO NOT EDIT.

package presetstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the presetstep type in the database.
	Label = "preset_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPresetID holds the string denoting the preset_id field in the database.
	FieldPresetID = "preset_id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldAssigneeRule holds the string denoting the assignee_rule field in the database.
	FieldAssigneeRule = "assignee_rule"
	// FieldAssigneeID holds the string denoting the assignee_id field in the database.
	FieldAssigneeID = "assignee_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePreset holds the string denoting the preset edge name in mutations.
	EdgePreset = "preset"
	// Table holds the table name of the presetstep in the database.
	Table = "preset_steps"
	// PresetTable is the table that holds the preset relation/edge.
	PresetTable = "preset_steps"
	// PresetInverseTable is the table name for the Preset entity.
	// It exists in this package in order to avoid circular dependency with the "preset" package.
	PresetInverseTable = "presets"
	// PresetColumn is the table column denoting the preset relation/edge.
	PresetColumn = "preset_id"
)

// Columns holds all SQL columns for presetstep fields.
var Columns = []string{
	FieldID,
	FieldPresetID,
	FieldStepOrder,
	FieldMethod,
	FieldIntervalDays,
	FieldAssigneeRule,
	FieldAssigneeID,
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
	// PresetIDValidator is a validator for the "preset_id" field. It is called by the builders before save.
	PresetIDValidator func(int) error
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
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
		return fmt.Errorf("presetstep: invalid enum value for method field: %q", m)
	}
}

// AssigneeRule defines the type for the "assignee_rule" enum field.
type AssigneeRule string

// AssigneeRuleEntityOwner is the default value of the AssigneeRule enum.
const DefaultAssigneeRule = AssigneeRuleEntityOwner

// AssigneeRule values.
const (
	AssigneeRuleEntityOwner  AssigneeRule = "entity_owner"
	AssigneeRuleSpecificUser AssigneeRule = "specific_user"
	AssigneeRuleFieldStaff   AssigneeRule = "field_staff"
)

func (ar AssigneeRule) String() string {
	return string(ar)
}

// AssigneeRuleValidator is a validator for the "assignee_rule" field enum values. It is called by the builders before save.
func AssigneeRuleValidator(ar AssigneeRule) error {
	switch ar {
	case AssigneeRuleEntityOwner, AssigneeRuleSpecificUser, AssigneeRuleFieldStaff:
		return nil
	default:
		return fmt.Errorf("presetstep: invalid enum value for assignee_rule field: %q", ar)
	}
}

// OrderOption defines the ordering options for the PresetStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPresetID orders the results by the preset_id field.
func ByPresetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresetID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByAssigneeRule orders the results by the assignee_rule field.
func ByAssigneeRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeRule, opts...).ToFunc()
}

// ByAssigneeID orders the results by the assignee_id field.
func ByAssigneeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPresetField orders the results by preset field.
func ByPresetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPresetStep(), sql.OrderByField(field, opts...))
	}
}
func newPresetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PresetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PresetTable, PresetColumn),
	)
}
