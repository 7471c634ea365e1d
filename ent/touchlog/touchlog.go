// Code generated by ent, DO NOT EDIT.

package touchlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the touchlog type in the database.
	Label = "touch_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTouchID holds the string denoting the touch_id field in the database.
	FieldTouchID = "touch_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldFollowUp holds the string denoting the follow_up field in the database.
	FieldFollowUp = "follow_up"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTouch holds the string denoting the touch edge name in mutations.
	EdgeTouch = "touch"
	// Table holds the table name of the touchlog in the database.
	Table = "touch_logs"
	// TouchTable is the table that holds the touch relation/edge.
	TouchTable = "touch_logs"
	// TouchInverseTable is the table name for the Touch entity.
	// It exists in this package in order to avoid circular dependency with the "touch" package.
	TouchInverseTable = "touches"
	// TouchColumn is the table column denoting the touch relation/edge.
	TouchColumn = "touch_id"
)

// Columns holds all SQL columns for touchlog fields.
var Columns = []string{
	FieldID,
	FieldTouchID,
	FieldOutcome,
	FieldNotes,
	FieldFollowUp,
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
	// TouchIDValidator is a validator for the "touch_id" field. It is called by the builders before save.
	TouchIDValidator func(int) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// FollowUp defines the type for the "follow_up" enum field.
type FollowUp string

// FollowUpNone is the default value of the FollowUp enum.
const DefaultFollowUp = FollowUpNone

// FollowUp values.
const (
	FollowUpNone       FollowUp = "none"
	FollowUpSnooze     FollowUp = "snooze"
	FollowUpReschedule FollowUp = "reschedule"
)

func (fu FollowUp) String() string {
	return string(fu)
}

// FollowUpValidator is a validator for the "follow_up" field enum values. It is called by the builders before save.
func FollowUpValidator(fu FollowUp) error {
	switch fu {
	case FollowUpNone, FollowUpSnooze, FollowUpReschedule:
		return nil
	default:
		return fmt.Errorf("touchlog: invalid enum value for follow_up field: %q", fu)
	}
}

// OrderOption defines the ordering options for the TouchLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTouchID orders the results by the touch_id field.
func ByTouchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTouchID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByFollowUp orders the results by the follow_up field.
func ByFollowUp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTouchField orders the results by touch field.
func ByTouchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTouchStep(), sql.OrderByField(field, opts...))
	}
}
func newTouchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TouchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TouchTable, TouchColumn),
	)
}
